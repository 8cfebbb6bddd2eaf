package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlinekit/pdfoutline/internal/api"
	"github.com/outlinekit/pdfoutline/internal/config"
	"github.com/outlinekit/pdfoutline/internal/outline"
	"github.com/outlinekit/pdfoutline/internal/pdfdoc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the outline extraction HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	srv := api.NewServer(api.ExtractorFunc(extractFile), log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting pdfoutline", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// extractFile opens the PDF at path and extracts its outline records.
func extractFile(path string) ([]outline.Record, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return outline.Extract(doc)
}
