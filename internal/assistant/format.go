// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// FormatTable writes the digest as a text table followed by one block per
// paper, mirroring the web page layout.
func FormatTable(d types.Digest, w io.Writer) {
	if d.IsEmpty() {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-20s  %-30s\n", "#", "Title", "Authors", "Keywords")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, r := range d.Rows {
		fmt.Fprintf(w, "%-4d  %-50s  %-20s  %-30s\n",
			i+1, truncate(r.Title, 50), truncate(r.Authors, 20), truncate(r.Keywords, 30))
	}
	fmt.Fprintln(w)

	for _, r := range d.Rows {
		fmt.Fprintf(w, "### %s\n%s\n", r.Title, r.Link)
		fmt.Fprintf(w, "Authors:  %s\n", r.Authors)
		fmt.Fprintf(w, "Summary:  %s\n", r.Summary)
		fmt.Fprintf(w, "Keywords: %s\n", r.Keywords)
		fmt.Fprintln(w, "---")
	}

	fmt.Fprintf(w, "%d results\n", len(d.Rows))
}

// FormatJSON writes the digest as indented JSON to w.
func FormatJSON(d types.Digest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// FormatYAML writes the digest as YAML to w.
func FormatYAML(d types.Digest, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
