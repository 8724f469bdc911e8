package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"relay-bot/domain"
	"relay-bot/infrastructure/storage"
	"relay-bot/infrastructure/telegram"
	"relay-bot/internal"
	"relay-bot/observability"
	"relay-bot/runtime"
	"relay-bot/runtime/workers"
	"relay-bot/services"
	workdir "relay-bot/storage"
	"relay-bot/transfer"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until SIGINT/SIGTERM.
// Returning instead of exiting lets the deferred cleanups run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Transfer records live in memory only
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := storage.NewTransferRepository(db, log, config.RecordTTL)

	wd, err := workdir.NewWorkDir(config.WorkDir)
	if err != nil {
		return exitConfig, fmt.Errorf("work directory: %w", err)
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Telegram client. The router is bound once the command service exists.
	var router *telegram.Router
	b, err := bot.New(config.TelegramToken, bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		router.Handle(ctx, b, update)
	}))
	if err != nil {
		return exitConfig, fmt.Errorf("telegram client: %w", err)
	}
	client := &http.Client{Timeout: config.DownloadTimeout}
	messenger := telegram.NewMessenger(b, client, log)

	// 5. Transfer pipeline
	throttle := transfer.Throttle{Interval: config.ProgressInterval, MinDelta: config.ProgressMinDelta}
	mode := services.NewDeliveryMode()
	probe := observability.NewDiskProbe(config.MinFreeSpaceMB * 1024 * 1024)
	downloader := transfer.NewDownloader(log, client, wd, probe, domain.DownloadChunkSize)
	uploader := transfer.NewUploader(log, messenger, mode, domain.UploadChunkSize)
	renamer := transfer.NewRenamer(log, messenger, wd, probe, uploader, repository, throttle)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, messenger, downloader, uploader, repository, wd, runtime.Settings{
		NumberOfUploadWorkers: config.NumberOfUploadWorkers,
		UploadQueueSize:       config.UploadQueueSize,
		SubmitTimeout:         config.SubmitTimeout,
		Throttle:              throttle,
		JanitorInterval:       config.JanitorInterval,
		ArtifactMaxAge:        config.ArtifactMaxAge,
		MetricInterval:        config.MetricInterval,
	})
	if err := orchestrator.Prepare(); err != nil {
		return exitRuntime, fmt.Errorf("work directory cleanup failed: %w", err)
	}

	commands := services.NewCommandService(log, messenger, orchestrator, renamer, mode, repository)
	router = telegram.NewRouter(log, commands)

	// 6. Start the engine, then poll updates until a signal arrives
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := orchestrator.Start(ctx); err != nil {
			log.Error("Orchestrator stopped with error", "error", err)
		}
	}()

	log.Info("Relay bot started", "work_dir", wd.Root(), "upload_workers", config.NumberOfUploadWorkers)
	b.Start(ctx)

	// 7. Final Cleanup
	log.Info("Shutting down gracefully...")
	orchestrator.Stop()
	<-stopped
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
