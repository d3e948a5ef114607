package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/gcbaptista/go-title-engine/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. TITLEGEN_RANKING_DAMPING.
const EnvPrefix = "TITLEGEN"

// Load reads settings from the optional config file at path (yaml or json, picked by
// extension), applies TITLEGEN_* environment overrides and fills defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	settings.ApplyDefaults()

	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.NewValidationError("", strings.Join(problems, "; "))
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("method", d.Method)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("ranking.damping", d.Ranking.Damping)
	v.SetDefault("ranking.tolerance", d.Ranking.Tolerance)
	v.SetDefault("ranking.max_iterations", d.Ranking.MaxIterations)
	v.SetDefault("keywords.allowed_tags", d.Keywords.AllowedTags)
	v.SetDefault("keywords.selection_divisor", d.Keywords.SelectionDivisor)
	v.SetDefault("template.slots", d.Template.Slots)
	v.SetDefault("corpus.min_comments", d.Corpus.MinComments)
	v.SetDefault("corpus.deleted_marker", d.Corpus.DeletedMarker)
	v.SetDefault("corpus.quote_prefix", d.Corpus.QuotePrefix)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
}
