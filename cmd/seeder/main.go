// Command seeder loads roleplay agent and language documents from JSON
// files into the document store. It is intended to be run offline, not as
// part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse files without writing to the database
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/roleplay-admin/internal/adapter/postgres"
	"github.com/heartmarshall/roleplay-admin/internal/adapter/postgres/roleplaylang"
	"github.com/heartmarshall/roleplay-admin/internal/app"
	"github.com/heartmarshall/roleplay-admin/internal/config"
	"github.com/heartmarshall/roleplay-admin/internal/seeder"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse files without writing to the database")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		for _, ph := range strings.Split(*phaseFlag, ",") {
			phases = append(phases, strings.TrimSpace(ph))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo, err := roleplaylang.New(pool, logger, appCfg.Database.CollectionName, appCfg.Database.LanguagesTable)
	if err != nil {
		logger.Error("create roleplay repo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := repo.CheckTables(ctx); err != nil {
		logger.Error("check roleplay tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := seeder.NewPipeline(logger, repo, postgres.NewTxManager(pool), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
