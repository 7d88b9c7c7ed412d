package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/migrations/custodydb"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/pgutil"
	mghelper "github.com/kevinbg012/mb-crypto-challenge/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("error setting up logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	logger.Info("Running custody database migrations", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, custodydb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
