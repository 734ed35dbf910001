package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/server"
	"github.com/ziadkadry99/docsite/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation site over HTTP",
	Long: `Starts an HTTP server with the app shell, the static assets and the
reader API (navigation, sessions, document loading and search).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	if servePort != 0 {
		cfg.Port = servePort
	}

	s, err := loadSite(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.CORSAllowAll,
	}, logger)

	var assets http.FileSystem
	if cfg.AssetsDir != "" {
		assets = http.Dir(cfg.AssetsDir)
	}
	site.RegisterRoutes(srv.Router(), s, assets)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "docsite %s serving %q on http://localhost%s (%d documents)\n",
		Version, s.Title(), srv.Addr(), s.Tree().Len())

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
