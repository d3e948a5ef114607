package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/internal/annotate"
	"github.com/gcbaptista/go-title-engine/internal/engine"
	"github.com/gcbaptista/go-title-engine/internal/persistence"
	"github.com/gcbaptista/go-title-engine/internal/report"
	"github.com/gcbaptista/go-title-engine/model"
)

// batchResults is what --results writes.
type batchResults struct {
	Method  model.Method           `json:"method" yaml:"method"`
	Summary model.Summary          `json:"summary" yaml:"summary"`
	Results []model.DocumentResult `json:"results" yaml:"results"`
}

func generateCMD(cfgPath *string) *cobra.Command {
	var input, output, resultsPath, method string
	var generate = &cobra.Command{
		Use:   "generate",
		Short: "Generate a title for every eligible thread of a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if method == "" {
				method = settings.Method
			}
			m := model.Method(method)
			if !m.Valid() {
				return fmt.Errorf("unknown method '%s'", method)
			}

			c, err := persistence.LoadCorpus(input)
			if err != nil {
				return fmt.Errorf("failed to load corpus %s: %w", input, err)
			}

			gen, err := engine.NewGenerator(annotate.NewProse(), *settings, logger, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results, summary := gen.Run(ctx, c, m, func(done, total int) {
				logger.Debug("progress", zap.Int("done", done), zap.Int("total", total))
			})

			out, closeOut, err := create(output)
			if err != nil {
				return err
			}
			written, err := report.Write(out, results)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			if resultsPath != "" {
				if err := persistence.Save(resultsPath, batchResults{Method: m, Summary: summary, Results: results}); err != nil {
					return err
				}
			}

			logger.Info("titles generated",
				zap.String("input", input),
				zap.Int("written", written),
				zap.Int("total", summary.Total),
				zap.Int("processed", summary.Processed),
				zap.Int("skipped", summary.Skipped),
				zap.Int("filtered", summary.Filtered))
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("interrupted: %w", err)
			}
			return nil
		},
	}
	generate.Flags().StringVarP(&input, "input", "i", "", "corpus file: title -> comments (json or yaml)")
	generate.Flags().StringVarP(&output, "output", "o", "-", "report file (default stdout)")
	generate.Flags().StringVar(&resultsPath, "results", "", "also save results and summary to this json or yaml file")
	generate.Flags().StringVarP(&method, "method", "m", "", "baseline or template (default from config)")
	_ = generate.MarkFlagRequired("input")

	return generate
}
