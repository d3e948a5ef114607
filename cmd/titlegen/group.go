package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/internal/corpus"
	"github.com/gcbaptista/go-title-engine/internal/persistence"
)

func groupCMD(cfgPath *string) *cobra.Command {
	var records, titles, output string
	var group = &cobra.Command{
		Use:   "group",
		Short: "Group line-delimited comment records into a title -> comments corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			index, err := persistence.LoadTitleIndex(titles)
			if err != nil {
				return fmt.Errorf("failed to load title index %s: %w", titles, err)
			}

			f, err := os.Open(records) // #nosec G304 -- input path comes from the operator
			if err != nil {
				return fmt.Errorf("failed to open records %s: %w", records, err)
			}
			defer func() { _ = f.Close() }()

			c, stats, err := corpus.Group(f, index, logger)
			if err != nil {
				return err
			}
			if err := persistence.SaveCorpus(output, c); err != nil {
				return err
			}

			logger.Info("corpus grouped",
				zap.String("output", output),
				zap.Int("titles", len(c)),
				zap.Int("records", stats.Records),
				zap.Int("grouped", stats.Grouped),
				zap.Int("malformed", stats.Malformed),
				zap.Int("unmatched", stats.Unmatched))
			return nil
		},
	}
	group.Flags().StringVar(&records, "records", "", "line-delimited JSON comment records")
	group.Flags().StringVar(&titles, "titles", "", "forum -> link id -> title index (json or yaml)")
	group.Flags().StringVarP(&output, "output", "o", "corpus.json", "corpus file to write")
	_ = group.MarkFlagRequired("records")
	_ = group.MarkFlagRequired("titles")

	return group
}
