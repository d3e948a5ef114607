// Package config provides configuration structures for the title engine.
// It defines ranking, keyword, template, corpus, server and logging options.
package config

import (
	"strconv"
	"strings"
)

// Defaults shared by ApplyDefaults and the viper loader.
const (
	DefaultMethod           = "template"
	DefaultWorkers          = 1
	DefaultDamping          = 0.85
	DefaultTolerance        = 1e-6
	DefaultMaxIterations    = 100
	DefaultSelectionDivisor = 3
	DefaultMinComments      = 10
	DefaultDeletedMarker    = "[deleted]"
	DefaultQuotePrefix      = "&gt; "
	DefaultAddress          = ":8080"
	DefaultMaxBodyBytes     = 10 << 20
	DefaultLogLevel         = "info"
)

// RankingSettings configures the PageRank power iteration.
type RankingSettings struct {
	Damping       float64 `mapstructure:"damping" json:"damping" yaml:"damping"`                      // Probability of following an edge (e.g., 0.85)
	Tolerance     float64 `mapstructure:"tolerance" json:"tolerance" yaml:"tolerance"`                // Stop once no score moves by this much
	MaxIterations int     `mapstructure:"max_iterations" json:"max_iterations" yaml:"max_iterations"` // Hard cap on iterations
}

// KeywordSettings configures candidate selection for the template method.
type KeywordSettings struct {
	AllowedTags      []string `mapstructure:"allowed_tags" json:"allowed_tags" yaml:"allowed_tags"`                // POS tags eligible as keyword candidates
	SelectionDivisor int      `mapstructure:"selection_divisor" json:"selection_divisor" yaml:"selection_divisor"` // Keep n/divisor+1 top-ranked candidates
}

// SlotSettings is one template slot with its tags in priority order.
type SlotSettings struct {
	Name string   `mapstructure:"name" json:"name" yaml:"name"`
	Tags []string `mapstructure:"tags" json:"tags" yaml:"tags"`
}

// TemplateSettings lists the title template slots in output order.
type TemplateSettings struct {
	Slots []SlotSettings `mapstructure:"slots" json:"slots" yaml:"slots"`
}

// CorpusSettings configures corpus filtering and comment preprocessing.
type CorpusSettings struct {
	MinComments   int    `mapstructure:"min_comments" json:"min_comments" yaml:"min_comments"`       // Titles with fewer comments are skipped
	DeletedMarker string `mapstructure:"deleted_marker" json:"deleted_marker" yaml:"deleted_marker"` // Comment bodies equal to this are dropped
	QuotePrefix   string `mapstructure:"quote_prefix" json:"quote_prefix" yaml:"quote_prefix"`       // Removed everywhere it occurs in a body
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" json:"max_body_bytes" yaml:"max_body_bytes"`
}

// LogSettings configures the zap logger.
type LogSettings struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level"` // debug, info, warn or error
	Development bool   `mapstructure:"development" json:"development" yaml:"development"`
}

// Settings contains every configuration option of the title engine.
type Settings struct {
	Method   string           `mapstructure:"method" json:"method" yaml:"method"`    // Default generation method: "baseline" or "template"
	Workers  int              `mapstructure:"workers" json:"workers" yaml:"workers"` // Documents processed concurrently in a batch
	Ranking  RankingSettings  `mapstructure:"ranking" json:"ranking" yaml:"ranking"`
	Keywords KeywordSettings  `mapstructure:"keywords" json:"keywords" yaml:"keywords"`
	Template TemplateSettings `mapstructure:"template" json:"template" yaml:"template"`
	Corpus   CorpusSettings   `mapstructure:"corpus" json:"corpus" yaml:"corpus"`
	Server   ServerSettings   `mapstructure:"server" json:"server" yaml:"server"`
	Log      LogSettings      `mapstructure:"log" json:"log" yaml:"log"`
}

// Default returns settings with every default applied.
func Default() Settings {
	var s Settings
	s.ApplyDefaults()
	return s
}

// DefaultSlots returns subject, verb, descriptor and object slots.
func DefaultSlots() []SlotSettings {
	return []SlotSettings{
		{Name: "subject", Tags: []string{"NNP", "NN"}},
		{Name: "verb", Tags: []string{"VB", "VBZ", "VBD"}},
		{Name: "descriptor", Tags: []string{"JJ"}},
		{Name: "object", Tags: []string{"NN", "NNP"}},
	}
}

// ApplyDefaults applies default values to unset settings
func (settings *Settings) ApplyDefaults() {
	if settings.Method == "" {
		settings.Method = DefaultMethod
	}
	if settings.Workers == 0 {
		settings.Workers = DefaultWorkers
	}

	if settings.Ranking.Damping == 0 {
		settings.Ranking.Damping = DefaultDamping
	}
	if settings.Ranking.Tolerance == 0 {
		settings.Ranking.Tolerance = DefaultTolerance
	}
	if settings.Ranking.MaxIterations == 0 {
		settings.Ranking.MaxIterations = DefaultMaxIterations
	}

	if len(settings.Keywords.AllowedTags) == 0 {
		settings.Keywords.AllowedTags = []string{"NN", "NNP", "JJ"}
	}
	if settings.Keywords.SelectionDivisor == 0 {
		settings.Keywords.SelectionDivisor = DefaultSelectionDivisor
	}

	if len(settings.Template.Slots) == 0 {
		settings.Template.Slots = DefaultSlots()
	}

	if settings.Corpus.MinComments == 0 {
		settings.Corpus.MinComments = DefaultMinComments
	}
	if settings.Corpus.DeletedMarker == "" {
		settings.Corpus.DeletedMarker = DefaultDeletedMarker
	}
	if settings.Corpus.QuotePrefix == "" {
		settings.Corpus.QuotePrefix = DefaultQuotePrefix
	}

	if settings.Server.Address == "" {
		settings.Server.Address = DefaultAddress
	}
	if settings.Server.MaxBodyBytes == 0 {
		settings.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if settings.Log.Level == "" {
		settings.Log.Level = DefaultLogLevel
	}
}

// Validate checks settings for invalid values and returns one message per problem.
func (settings *Settings) Validate() []string {
	var errors []string

	if settings.Method != "baseline" && settings.Method != "template" {
		errors = append(errors, "Invalid method '"+settings.Method+"' (must be 'baseline' or 'template')")
	}
	if settings.Workers < 1 {
		errors = append(errors, "workers must be at least 1")
	}

	if settings.Ranking.Damping <= 0 || settings.Ranking.Damping >= 1 {
		errors = append(errors, "ranking.damping must be between 0 and 1 (exclusive)")
	}
	if settings.Ranking.Tolerance <= 0 {
		errors = append(errors, "ranking.tolerance must be positive")
	}
	if settings.Ranking.MaxIterations < 1 {
		errors = append(errors, "ranking.max_iterations must be at least 1")
	}

	errors = append(errors, checkDuplicates("keywords.allowed_tags", settings.Keywords.AllowedTags)...)
	if settings.Keywords.SelectionDivisor < 1 {
		errors = append(errors, "keywords.selection_divisor must be at least 1")
	}

	seenSlots := make(map[string]bool)
	for i, slot := range settings.Template.Slots {
		field := "template.slots[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(slot.Name) == "" {
			errors = append(errors, field+" name cannot be empty or whitespace-only")
		} else if seenSlots[slot.Name] {
			errors = append(errors, "Duplicate slot '"+slot.Name+"' found in template.slots")
		}
		seenSlots[slot.Name] = true
		if len(slot.Tags) == 0 {
			errors = append(errors, field+" must list at least one tag")
		}
		errors = append(errors, checkDuplicates(field+".tags", slot.Tags)...)
	}

	if settings.Corpus.MinComments < 1 {
		errors = append(errors, "corpus.min_comments must be at least 1")
	}
	if settings.Server.MaxBodyBytes < 0 {
		errors = append(errors, "server.max_body_bytes cannot be negative")
	}

	switch strings.ToLower(settings.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, "Invalid log level '"+settings.Log.Level+"' (must be debug, info, warn or error)")
	}

	return errors
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			errors = append(errors, "Empty value found in "+fieldName)
			continue
		}
		if seen[field] {
			errors = append(errors, "Duplicate value '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}
