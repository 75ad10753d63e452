package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	sentrygo "github.com/getsentry/sentry-go"

	"moviecatalog/console"
	"moviecatalog/csvimport"
	"moviecatalog/memory"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var (
		seedPath string
		limit    int
	)

	flag.StringVar(&seedPath, "seed", "", "Path to a movies csv imported on startup")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot load config:", err)
		return err
	}
	if seedPath == "" {
		seedPath = cfg.Catalog.SeedCSV
	}
	if limit == 0 {
		limit = cfg.Catalog.SeedLimit
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot init logger:", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Errorw("cannot init sentry", "error", err)
		return err
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx := context.Background()
	svc := movie.NewUsecase(memory.NewMovieRepository())

	if seedPath != "" {
		count, err := csvimport.ImportFile(ctx, svc, seedPath, limit)
		if err != nil {
			log.Errorw("seed import failed", "path", seedPath, "error", err)
			sentry.WithContext(ctx).Error(err)
			return err
		}
		log.Infow("seed import completed", "path", seedPath, "rows", count)
	}

	session, err := console.New(
		console.WithMovieService(svc),
		console.WithConfig(cfg),
		console.WithLogger(log),
	)
	if err != nil {
		log.Errorw("cannot create console session", "error", err)
		return err
	}

	if err := session.Run(ctx); err != nil {
		log.Errorw("console session stopped with error", "error", err)
		return err
	}

	return nil
}
