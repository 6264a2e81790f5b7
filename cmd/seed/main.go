// Command seed loads researchers, projects and accounts from a YAML file.
// Records whose id is already stored are skipped; the rest are written in
// one transaction.
//
// Flags:
//
//	--file     seed file (default: seed.path from config)
//	--dry-run  validate and count without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/research-registry/internal/app"
	"github.com/heartmarshall/research-registry/internal/app/seeder"
	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/pkg/ctxutil"
)

func main() {
	fileFlag := flag.String("file", "", "seed file (default: seed.path from config)")
	dryRunFlag := flag.Bool("dry-run", false, "validate and count without writing")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	path := cfg.Seed.Path
	if *fileFlag != "" {
		path = *fileFlag
	}

	f, err := seeder.LoadFile(path)
	if err != nil {
		logger.Error("load seed file", slog.String("path", path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = ctxutil.NewRequestID(ctx)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("start", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	if _, err := a.Seeder(*dryRunFlag).Run(ctx, f); err != nil {
		logger.ErrorContext(ctx, "seed failed", slog.String("path", path), slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}
}
