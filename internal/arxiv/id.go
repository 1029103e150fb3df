// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "regexp"

// idPattern matches a modern arXiv ID anywhere in a string, with an
// optional version suffix: "2301.07041", "2301.07041v2".
var idPattern = regexp.MustCompile(`(\d{4}\.\d{4,5})(?:v\d+)?`)

// strictPattern matches a string that is exactly an arXiv ID, with an
// optional "arXiv:" prefix.
var strictPattern = regexp.MustCompile(`^(?:arXiv:)?(\d{4}\.\d{4,5})(?:v\d+)?$`)

// ExtractID pulls the first arXiv ID out of s, which may be an abs URL,
// a PDF URL, or any free-form string. The version suffix is stripped.
// It returns "" when no ID is present.
func ExtractID(s string) string {
	m := idPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// Normalize returns the canonical form of an identifier the user typed:
// the "arXiv:" prefix and version suffix are stripped. The second return
// is false when s is not an arXiv ID.
func Normalize(s string) (string, bool) {
	m := strictPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
