// Recipe Gacha: draw AI-generated recipe ideas from simple criteria.
//
// Usage:
//
//	recipegacha [-verbose] [-quiet]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipegacha/internal/display"
	"github.com/hammamikhairi/recipegacha/internal/engine"
	"github.com/hammamikhairi/recipegacha/internal/gemini"
	"github.com/hammamikhairi/recipegacha/internal/logger"
	"github.com/hammamikhairi/recipegacha/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".recipegacha/logs/recipegacha.log", "file to write logs to (use \"stderr\" to log to console)")
	dataDir := flag.String("data-dir", ".recipegacha", "directory for favorites and preferences")
	model := flag.String("model", gemini.DefaultModel, "Gemini model to generate recipes with")
	flag.Parse()

	// Direct logs to a file by default so the TUI stays clean.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	log, flush, err := logger.New(logLevel, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		log, flush, _ = logger.New(logLevel, "stderr")
	}
	defer flush()

	apiKey := os.Getenv(gemini.EnvAPIKey)
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "error: %s is not set\n", gemini.EnvAPIKey)
		fmt.Fprintln(os.Stderr, "Get a key at https://aistudio.google.com/apikey and export it or put it in a .env file.")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey, log, gemini.WithModel(*model))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not create Gemini client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	kv := storage.NewFileKV(*dataDir)
	favorites := storage.NewFavorites(kv, log)
	prefs := storage.NewPrefsStore(kv, log)

	eng := engine.New(client, favorites, log)
	log.Infow("starting", "model", *model, "data_dir", *dataDir)

	if err := display.New(eng, prefs).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
