package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/config"
	"github.com/gcbaptista/go-title-engine/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCMD().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCMD() *cobra.Command {
	var cfgPath string
	var root = &cobra.Command{
		Use:           "titlegen",
		Short:         "Generate titles for comment threads with TextRank",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (yaml or json)")

	root.AddCommand(
		generateCMD(&cfgPath),
		serveCMD(&cfgPath),
		groupCMD(&cfgPath),
		postagsCMD(&cfgPath),
		versionCMD(),
	)
	return root
}

// setup loads settings and builds the logger every command shares.
func setup(cfgPath string) (*config.Settings, *zap.Logger, error) {
	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		return nil, nil, err
	}
	return settings, logger, nil
}

// create opens path for writing, or returns stdout when path is empty or "-".
func create(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) // #nosec G304 -- output path comes from the operator
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
