// Package main is the Inkwell CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/archive"
	"github.com/quillworks/inkwell/internal/config"
	"github.com/quillworks/inkwell/internal/diff"
	"github.com/quillworks/inkwell/internal/extract"
	"github.com/quillworks/inkwell/internal/feedback"
	"github.com/quillworks/inkwell/internal/prompt"
	"github.com/quillworks/inkwell/internal/readability"
	"github.com/quillworks/inkwell/internal/samples"
	"github.com/quillworks/inkwell/internal/server"
	"github.com/quillworks/inkwell/internal/storage"
	"github.com/quillworks/inkwell/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/inkwell/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "inkwell server" from the project dir uses the project's
// config (including debug). Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	// A .env beside the binary is the development way to carry the API key.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "analyze":
		runAnalyze()
	case "diff":
		runDiff()
	case "version", "--version", "-v":
		fmt.Printf("inkwell version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	apiKey := os.Getenv(cfg.AI.APIKeyEnv)
	if apiKey == "" {
		logger.Warn("API key env is empty; AI operations will fail",
			zap.String("env", cfg.AI.APIKeyEnv))
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	idx, err := archive.Open(cfg.Storage.BleveIndexPath)
	if err != nil {
		logger.Fatal("Failed to open archive index", zap.Error(err))
	}
	defer idx.Close()

	registry, err := prompt.NewRegistry(cfg.Prompts.Dir, logger)
	if err != nil {
		logger.Fatal("Failed to load prompt templates", zap.Error(err))
	}
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Prompts.WatchOrDefault() {
		go func() {
			if err := registry.Watch(watchCtx); err != nil {
				logger.Warn("prompt template watch stopped", zap.Error(err))
			}
		}()
	}

	analyzer := readability.New(logger,
		readability.WithLongSentenceThreshold(cfg.Analysis.LongSentenceWords),
		readability.WithMaxLongSentences(cfg.Analysis.MaxLongSentences),
	)
	client := ai.NewHTTPClient(&cfg.AI, apiKey, logger)
	svc := feedback.NewService(client, registry, analyzer, store, logger)
	sampleStore := samples.NewStore(cfg.Samples.Dir,
		time.Duration(cfg.Samples.TTLSeconds)*time.Second, logger)

	srv := server.NewServer(analyzer, svc, store, idx,
		extract.NewExtractor(), sampleStore, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// runAnalyze prints the readability report for a file (or stdin) as JSON.
func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	longWords := fs.Int("long-sentence-words", 25, "word count above which a sentence is flagged")
	maxLong := fs.Int("max-long-sentences", 5, "how many long sentences to report")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: inkwell analyze [flags] [file]\n\n")
		fmt.Fprintf(fs.Output(), "Reads the file (or stdin when omitted or \"-\") and prints the readability report as JSON.\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}

	analyzer := readability.New(nil,
		readability.WithLongSentenceThreshold(*longWords),
		readability.WithMaxLongSentences(*maxLong),
	)
	printJSON(analyzer.Analyze(text))
}

// runDiff prints the word diff between two files as JSON segments.
func runDiff() {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: inkwell diff <original> <modified>\n\n")
		fmt.Fprintf(fs.Output(), "Prints the word-level diff between the two files as JSON segments.\n")
	}
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}

	original, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	modified, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", fs.Arg(1), err)
		os.Exit(1)
	}
	printJSON(map[string]interface{}{
		"segments": diff.Diff(string(original), string(modified)),
	})
}

// readInput reads a file, or stdin when path is empty or "-". Documents go
// through the same extraction as uploads, so "inkwell analyze draft.docx"
// works.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return extract.NewExtractor().Extract(path)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Inkwell - academic writing feedback service

Usage:
  inkwell <command> [flags]

Commands:
  server     Run the HTTP API server
  analyze    Print the readability report for a file or stdin
  diff       Print the word diff between two files
  version    Print version
  help       Show this help

Run 'inkwell <command> --help' for command flags.
`)
}
