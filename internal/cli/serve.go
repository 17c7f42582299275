package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cadefarragut/PortfolioV2/internal/analytics"
	"github.com/cadefarragut/PortfolioV2/internal/config"
	"github.com/cadefarragut/PortfolioV2/internal/contact"
	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
	"github.com/cadefarragut/PortfolioV2/internal/printer"
	"github.com/cadefarragut/PortfolioV2/internal/web"
)

const cleanupInterval = 24 * time.Hour

func newServeCommand(p *printer.Printer) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return p.Error("Invalid configuration", []string{err.Error()})
			}
			if content != "" {
				cfg.ContentPath = content
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log.Default())
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "YAML content file (overrides PORTFOLIO_CONTENT)")
	return cmd
}

// app is the wired server and whatever must be released after it stops.
type app struct {
	server *web.Server
	store  *analytics.Store
}

func (a *app) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

func buildApp(ctx context.Context, cfg config.Config, logger *log.Logger) (*app, error) {
	content, err := portfolio.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	opts := web.Options{
		Content:       content,
		Logger:        logger,
		Retention:     cfg.Analytics.Retention,
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		AssetDirs: map[string]string{
			"/images":    cfg.ImagesDir,
			"/resources": "resources",
		},
	}
	if cfg.SMTP.User != "" {
		opts.Mailer = contact.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.ToEmail)
	} else {
		logger.Println("Contact form disabled: SMTP_USER not set")
	}

	a := &app{}
	if cfg.Analytics.Enabled {
		store, err := analytics.Open(ctx, cfg.Analytics.DBPath, logger)
		if err != nil {
			return nil, err
		}
		a.store = store
		opts.Tracker = store
	}
	a.server = web.New(opts)
	return a, nil
}

// runCleanup prunes old analytics on start and then once a day until ctx ends.
func runCleanup(ctx context.Context, store *analytics.Store, retention time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		if _, err := store.Cleanup(ctx, retention); err != nil && ctx.Err() == nil {
			logger.Printf("Error cleaning up old visitor data: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func serve(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	gin.SetMode(cfg.GinMode)

	a, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	handler, err := a.server.Handler()
	if err != nil {
		return err
	}
	if a.store != nil {
		go runCleanup(ctx, a.store, cfg.Analytics.Retention, logger)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Println("Shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
