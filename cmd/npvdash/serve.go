package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/npv-dashboard/internal/dashboard"
	"github.com/cloud-ru/npv-dashboard/internal/format"
	"github.com/cloud-ru/npv-dashboard/internal/handlers"
	"github.com/cloud-ru/npv-dashboard/internal/narrative"
	"github.com/cloud-ru/npv-dashboard/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(sctx); err != nil {
				logger.Warn("tracing shutdown failed", zap.Error(err))
			}
		}()

		schedule, err := scenario(cfg)
		if err != nil {
			return err
		}
		view, err := dashboard.NewView(schedule, cfg.DiscountRate, format.Default())
		if err != nil {
			return fmt.Errorf("analyze scenario: %w", err)
		}
		m := view.Analysis.Metrics
		logger.Info("scenario analyzed",
			zap.Float64("npv", m.NPV),
			zap.Float64("irr_percent", m.IRRPercent),
			zap.Bool("irr_determined", m.IRRDetermined),
			zap.Int("periods", schedule.Periods()),
		)

		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set; AI analysis requests will fail")
		}
		narrator := narrative.NewNarrator(
			narrative.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel),
			logger,
			narrative.WithTracer(tracer),
			narrative.WithTimeout(cfg.NarrativeTimeout),
		)

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handlers.NewServer(cfg, logger, tracer, view, narrator).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", zap.String("addr", srv.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				return fmt.Errorf("http shutdown: %w", err)
			}
		}
		narrator.Wait()
		return nil
	},
}
