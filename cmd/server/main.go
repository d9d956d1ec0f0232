package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/config"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	configureLogging(c)

	mcpServer, err := server.Bootstrap(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpServer.Connect(ctx); err != nil {
		return err
	}

	switch c.GetTransport() {
	case "http":
		displayAppname(c.GetAppName())
		return serveHTTP(ctx, c, mcpServer)
	default:
		// The stdio transport owns stdout for JSON-RPC; no banner.
		return mcpServer.Serve(ctx)
	}
}

func serveHTTP(ctx context.Context, c config.Config, mcpServer *server.Server) error {
	httpServer := &http.Server{Addr: c.GetPort(), Handler: mcpServer.HTTPHandler()}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("http transport listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer.ListenAndServe: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}
	return <-errCh
}

// configureLogging sends logs to stderr (stdout belongs to the stdio
// transport) with a console writer in development.
func configureLogging(c config.Config) {
	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
