// Package corpus builds and filters title -> comments corpora.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/internal/logging"
	"github.com/gcbaptista/go-title-engine/model"
)

// maxRecordBytes bounds a single line-delimited record.
const maxRecordBytes = 4 << 20

// Partition splits the titles of c, in ascending order, into those with at least minComments
// comments and the number of titles below that threshold.
func Partition(c model.Corpus, minComments int) (eligible []string, filtered int) {
	for _, title := range c.Titles() {
		if len(c[title]) < minComments {
			filtered++
			continue
		}
		eligible = append(eligible, title)
	}
	return eligible, filtered
}

// Filter returns the entries of c with at least minComments comments.
func Filter(c model.Corpus, minComments int) model.Corpus {
	out := make(model.Corpus, len(c))
	for title, comments := range c {
		if len(comments) >= minComments {
			out[title] = comments
		}
	}
	return out
}

// GroupStats counts what happened to each raw record.
type GroupStats struct {
	Records   int `json:"records"`
	Grouped   int `json:"grouped"`
	Malformed int `json:"malformed"`
	Unmatched int `json:"unmatched"` // no title known for the record's forum and link id
}

// LinkKey returns the post id of a link id, dropping a leading kind prefix such as "t3_".
func LinkKey(linkID string) string {
	if i := strings.IndexByte(linkID, '_'); i >= 0 {
		return linkID[i+1:]
	}
	return linkID
}

// Group reads line-delimited comment records and collects their bodies under the title of the
// post they belong to. Bodies are NFC-normalized. Malformed lines and comments on unknown posts
// are counted and skipped; only a read failure aborts grouping.
func Group(records io.Reader, titles model.TitleIndex, logger *zap.Logger) (model.Corpus, GroupStats, error) {
	logger = logging.OrNop(logger)
	out := make(model.Corpus)
	var stats GroupStats

	scanner := bufio.NewScanner(records)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		stats.Records++

		comment, err := parseRecord(line, raw)
		if err != nil {
			stats.Malformed++
			logger.Debug("skipping record", zap.Int("line", line), zap.Error(err))
			continue
		}

		title, ok := titles[comment.Forum][LinkKey(comment.LinkID)]
		if !ok {
			stats.Unmatched++
			continue
		}

		out[title] = append(out[title], norm.NFC.String(comment.Body))
		stats.Grouped++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading records after line %d: %w", line, err)
	}

	logger.Info("grouped comments",
		zap.Int("records", stats.Records),
		zap.Int("grouped", stats.Grouped),
		zap.Int("malformed", stats.Malformed),
		zap.Int("unmatched", stats.Unmatched),
		zap.Int("titles", len(out)))
	return out, stats, nil
}

func parseRecord(line int, raw string) (model.RawComment, error) {
	var comment model.RawComment
	if err := json.Unmarshal([]byte(raw), &comment); err != nil {
		return comment, errors.NewMalformedRecordError(line, err)
	}
	if comment.Forum == "" || comment.LinkID == "" {
		return comment, errors.NewMalformedRecordError(line, fmt.Errorf("missing subreddit or link_id"))
	}
	return comment, nil
}
