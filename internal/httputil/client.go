// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// NewClient returns an *http.Client configured from cfg. A zero Timeout
// leaves the client without a deadline; callers bound requests with their
// context instead.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// SetUserAgent sets the User-Agent header when ua is non-empty.
func SetUserAgent(req *http.Request, ua string) {
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
}

// urlSafe reports whether b may appear literally in a URL: unreserved
// characters, reserved delimiters, and '%'.
func urlSafe(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=%", b) >= 0
}

// RequoteURL percent-encodes the bytes of raw that can never appear in a
// URL (spaces, control characters, non-ASCII) and leaves everything else,
// including reserved delimiters and existing escapes, untouched. A query
// interpolated into a URL keeps its '&', '#' and '=' characters, so their
// meaning to the server is unchanged.
func RequoteURL(raw string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if urlSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
