package model

import "sort"

// Corpus maps an original post title to the bodies of the comments posted under it.
// Titles are unique keys; comment order is the order the records were read in.
type Corpus map[string][]string

// Titles returns the corpus keys in ascending order.
func (c Corpus) Titles() []string {
	titles := make([]string, 0, len(c))
	for title := range c {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// CommentCount returns the total number of comments across all titles.
func (c Corpus) CommentCount() int {
	total := 0
	for _, comments := range c {
		total += len(comments)
	}
	return total
}

// RawComment is one line-delimited comment record as exported by the source forum.
type RawComment struct {
	Forum  string `json:"subreddit"`
	LinkID string `json:"link_id"`
	Body   string `json:"body"`
}

// TitleIndex maps forum -> link id -> post title. Link ids are only unique within a forum.
type TitleIndex map[string]map[string]string
