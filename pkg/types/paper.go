// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Paper holds the arXiv metadata papersync writes into Notion.
type Paper struct {
	// ID is the normalized arXiv identifier without a version suffix
	// (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the arXiv API.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the submission date of the first version.
	Published time.Time `json:"published" yaml:"published"`

	// AbsURL is the paper's abstract page (https://arxiv.org/abs/<id>).
	AbsURL string `json:"abs_url" yaml:"abs_url"`

	// PDFURL is the paper's PDF (https://arxiv.org/pdf/<id>).
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// Categories lists the arXiv subject categories (e.g. "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Fingerprint returns a stable hash over the fields sync writes to
// Notion. Two papers with equal fingerprints need no page update.
func (p Paper) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(p.Title))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(p.Authors, "\x1f")))
	h.Write([]byte{0})
	h.Write([]byte(p.Abstract))
	h.Write([]byte{0})
	if !p.Published.IsZero() {
		h.Write([]byte(p.Published.UTC().Format("2006-01-02")))
	}
	return hex.EncodeToString(h.Sum(nil))
}
