package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/internal/annotate"
	"github.com/gcbaptista/go-title-engine/internal/persistence"
	"github.com/gcbaptista/go-title-engine/internal/report"
)

func postagsCMD(cfgPath *string) *cobra.Command {
	var input, output string
	var structures bool
	var postags = &cobra.Command{
		Use:   "postags",
		Short: "Count part-of-speech tags over the original titles of a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			c, err := persistence.LoadCorpus(input)
			if err != nil {
				return fmt.Errorf("failed to load corpus %s: %w", input, err)
			}

			annotator := annotate.NewProse()
			rep := report.BuildPOSReport(c, settings.Corpus.MinComments, annotator, annotator)

			out, closeOut, err := create(output)
			if err != nil {
				return err
			}
			counts := rep.Tags
			if structures {
				counts = rep.Structures
			}
			err = report.WriteCounts(out, counts)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			logger.Info("title tags counted",
				zap.Int("titles", rep.Titles),
				zap.Int("skipped", rep.Skipped),
				zap.Int("distinct", len(counts)))
			return nil
		},
	}
	postags.Flags().StringVarP(&input, "input", "i", "", "corpus file: title -> comments (json or yaml)")
	postags.Flags().StringVarP(&output, "output", "o", "-", "counts file (default stdout)")
	postags.Flags().BoolVar(&structures, "structures", false, "count whole-title tag sequences instead of single tags")
	_ = postags.MarkFlagRequired("input")

	return postags
}
