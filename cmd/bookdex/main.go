// bookdex turns free-text book requests into ranked recommendations over a
// fixed catalog.
//
// Usage:
//
//	bookdex train   — fit the vector space over the catalog and publish artifacts
//	bookdex query   — interactive recommendation loop
//	bookdex serve   — HTTP search API
//
// Env vars:
//
//	ENV             — config environment: local, dev, prod (default: local)
//	INTENT_API_KEY  — intent provider API key (optional; see config)
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/config"
	"github.com/narralit/bookdex/internal/metrics"
	"github.com/narralit/bookdex/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := newLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	metrics.RegisterIntentMetrics()

	log.Info("Starting bookdex",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("command", os.Args[1]),
	)

	switch os.Args[1] {
	case "train":
		err = runTrain(cfg, log)
	case "query":
		err = runQuery(cfg, log)
	case "serve":
		err = runServe(cfg, log)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("Command failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bookdex <train|query|serve>")
}
