package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mattjoyce/axis-scorer/internal/config"
	"github.com/mattjoyce/axis-scorer/internal/front"
	"github.com/mattjoyce/axis-scorer/internal/history"
	"github.com/mattjoyce/axis-scorer/internal/llm"
	"github.com/mattjoyce/axis-scorer/internal/log"
	"github.com/mattjoyce/axis-scorer/internal/metrics"
	"github.com/mattjoyce/axis-scorer/internal/pipeline"
	"github.com/mattjoyce/axis-scorer/internal/tui/watch"
	"github.com/mattjoyce/axis-scorer/internal/webhook"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "start":
		os.Exit(runStart(args))
	case "watch":
		os.Exit(runWatch(args))
	case "version":
		fmt.Printf("axis-scorer version %s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`axis-scorer - AXIS conversation scoring webhook for Front

Usage:
  axis-scorer <command> [flags]

Commands:
  start     Start the webhook receiver in foreground
  watch     Live terminal monitor of recent scores
  version   Show version information
  help      Show this help message

start flags:
  --config <path>   Path to YAML configuration file (optional)

watch flags:
  --url <url>       Base URL of a running scorer (default http://localhost:8080)

Required environment (start):
  FRONT_API_KEY                  Front API access token
  FRONT_APP_SECRET               Shared secret for webhook signatures
  GOOGLE_GENERATIVE_AI_API_KEY   Gemini API key
`)
}

func runStart(args []string) int {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel)
	logger := log.WithComponent("main")
	logger.Info("axis-scorer starting", "version", version, "listen", cfg.Listen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := history.Open(ctx, cfg.State.Path)
	if err != nil {
		logger.Error("failed to open score journal", "path", cfg.State.Path, "error", err)
		return 1
	}
	defer store.Close()
	logger.Info("score journal opened", "path", cfg.State.Path)

	m := metrics.New()

	assessor := llm.NewClient(cfg.Secrets.GeminiAPIKey,
		llm.WithBaseURL(cfg.LLM.BaseURL),
		llm.WithModel(cfg.LLM.Model),
	)
	frontClient := front.New(cfg.Secrets.FrontAPIKey,
		front.WithBaseURL(cfg.Front.BaseURL),
		front.WithRateLimitHook(m.RecordRateLimited),
	)

	tracker := pipeline.NewTracker()
	processor := pipeline.New(assessor, frontClient, store, m)

	server := webhook.New(webhook.Config{
		Listen: cfg.Listen,
		Secret: cfg.Secrets.FrontAppSecret,
	}, processor, tracker, store, m, log.WithComponent("webhook"))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && err != context.Canceled {
			errCh <- err
		}
	}()

	logger.Info("axis-scorer running (press Ctrl+C to stop)")

	exitCode := 0
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
		cancel()
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		cancel()
		exitCode = 1
	}

	// The 202s already went out; stay alive until every detached scoring
	// task settles.
	logger.Info("draining background tasks")
	tracker.Wait()

	logger.Info("axis-scorer stopped")
	return exitCode
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	apiURL := fs.String("url", "http://localhost:8080", "Base URL of a running scorer")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	p := tea.NewProgram(watch.New(*apiURL))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
		return 1
	}
	return 0
}
