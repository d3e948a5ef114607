package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/api"
	"github.com/gcbaptista/go-title-engine/internal/annotate"
	"github.com/gcbaptista/go-title-engine/internal/engine"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func serveCMD(cfgPath *string) *cobra.Command {
	var serveAddr string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if serveAddr == "" {
				serveAddr = settings.Server.Address
			}
			if !settings.Log.Development {
				gin.SetMode(gin.ReleaseMode)
			}

			m := metrics.New()
			eng, err := engine.NewEngine(annotate.NewProse(), *settings, logger, m)
			if err != nil {
				return err
			}
			defer eng.Stop()

			srv := &http.Server{
				Addr:              serveAddr,
				Handler:           api.NewRouter(eng, m, logger, settings.Server),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server", zap.String("addr", serveAddr), zap.String("method", settings.Method))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")

	return serve
}
