package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"relay/backend"
	"relay/config"
	"relay/handler"
	"relay/logging"
)

var version = "dev"

var cliArgs config.CliConfig

var rootCmd = &cobra.Command{
	Use:   "ai-relay",
	Short: "Relay AI analysis requests to the Claude Messages API",
	Long: `ai-relay accepts POST /ai-analysis with {"inputText": "..."}, forwards the
text to the Claude Messages API and returns the provider's response as-is.

The API key is read from RELAY_PROVIDER_API_KEY or ANTHROPIC_API_KEY, which
may also be supplied through a .env file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	cliArgs.Register(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	if cliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	if err := config.LoadEnvFile(cliArgs.EnvFile); err != nil {
		return err
	}
	cfg, err := config.LoadConfig(cliArgs.ConfigFile)
	if err != nil {
		return err
	}
	if cfg.Provider.Timeout == 0 {
		log.Debugln("No provider timeout configured, provider calls may wait indefinitely")
	}

	client := backend.NewBackendClient(cfg.Provider)
	httpHandler := handler.NewHTTPHandler(client, cfg.MaxBodyBytes)

	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: handler.NewRouter(httpHandler),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warnf("Shutdown: %v", err)
		}
	}()

	log.Infof("Server running on %s", cfg.ListenAddress)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	<-shutdownDone
	log.Infoln("Server stopped")
	return nil
}
