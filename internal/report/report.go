// Package report renders generation results and title statistics as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gcbaptista/go-title-engine/model"
)

// Delimiter opens every report block.
var Delimiter = strings.Repeat("#", 62)

// Write renders one block per successful result, in the given order:
// the delimiter, the original title, the generated title and a blank line.
// Failed results are left out.
func Write(w io.Writer, results []model.DocumentResult) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\nORIGINAL TITLE: %s\nGENERATED TITLE: %s\n\n", Delimiter, r.Title, r.Generated); err != nil {
			return written, fmt.Errorf("failed to write report block for '%s': %w", r.Title, err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush report: %w", err)
	}
	return written, nil
}
