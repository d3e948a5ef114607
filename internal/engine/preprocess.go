package engine

import (
	"strings"

	"github.com/gcbaptista/go-title-engine/config"
)

// Preprocess drops comments equal to the deleted marker, removes every occurrence of the quote
// prefix from the rest and joins them with single spaces.
func Preprocess(comments []string, cfg config.CorpusSettings) string {
	kept := make([]string, 0, len(comments))
	for _, c := range comments {
		if c == cfg.DeletedMarker {
			continue
		}
		if cfg.QuotePrefix != "" {
			c = strings.ReplaceAll(c, cfg.QuotePrefix, "")
		}
		kept = append(kept, c)
	}
	return strings.Join(kept, " ")
}
