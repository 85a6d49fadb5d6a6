package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"persondocs/internal/catalog"
	"persondocs/internal/config"
	"persondocs/internal/export"
	"persondocs/internal/extract"
	"persondocs/internal/ingest"
	"persondocs/internal/repository"
	"persondocs/internal/server"
	"persondocs/internal/storage"
	"persondocs/internal/summarize"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, db, err := repository.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}
	if err := repository.HealthCheck(ctx, db, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	peopleRepo := repository.NewPersonRepository(entc, logger)
	docsRepo := repository.NewDocumentRepository(entc, logger)
	layout := storage.NewLayout(cfg.Uploads.Root, logger)

	extractor := extract.NewExtractor(extract.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	// summaries degrade to placeholders when no API key is configured
	var summarizer summarize.Summarizer
	if cfg.AI.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, document descriptions will be skipped")
	} else {
		gem, err := summarize.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, logger)
		if err != nil {
			logger.Error("failed to initialize summarization client", "error", err)
			os.Exit(1)
		}
		defer gem.Close()
		summarizer = gem
	}

	describer := ingest.NewDescriber(extractor, summarizer, logger)
	catalogSvc := catalog.NewService(catalog.NewEntTx(entc), peopleRepo, docsRepo, layout, describer, cfg.Uploads.AllowedExtensions, logger)
	exportSvc := export.NewService(peopleRepo, logger)

	handler, err := server.NewHandler(catalogSvc, exportSvc, db, cfg.Server.SecretKey, logger)
	if err != nil {
		logger.Error("failed to build http handler", "error", err)
		os.Exit(1)
	}
	srv := server.New(cfg.Server.Addr, handler, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("http serve error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}
