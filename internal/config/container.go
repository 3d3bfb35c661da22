package config

import (
	"time"

	"payslip-processor/internal/domain"
	"payslip-processor/internal/service"
	"payslip-processor/internal/store"
	"payslip-processor/internal/worker"
	"payslip-processor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config      domain.Config
	Logger      domain.Logger
	TaskStore   domain.TaskStore
	Recognizer  domain.Recognizer
	Organizer   *service.Organizer
	Coordinator *service.Coordinator
	Pool        *worker.Pool
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	taskStore := store.NewMemoryTaskStore()

	recognizer := service.NewTesseractRecognizer(
		cfg.GetTesseractPath(),
		time.Duration(cfg.GetOCRTimeoutSec())*time.Second,
		appLogger,
	)
	if !recognizer.Available() {
		appLogger.Warn("Tesseract not found; pages without a text layer will use fallback naming")
	}

	splitter := service.NewPDFSplitter(appLogger)
	acquirer := service.NewFitzTextAcquirer(recognizer, cfg.GetOCRLanguage(), appLogger)
	identity := service.NewIdentityExtractor(appLogger)
	period := service.NewPeriodExtractor()
	organizer := service.NewOrganizer(appLogger)

	coordinator := service.NewCoordinator(
		splitter,
		acquirer,
		identity,
		period,
		organizer,
		cfg.GetOutputPath(),
		appLogger,
	)

	pool := worker.NewPool(coordinator, taskStore, appLogger, cfg.GetWorkerCount(), cfg.GetQueueSize())

	return &Container{
		Config:      cfg,
		Logger:      appLogger,
		TaskStore:   taskStore,
		Recognizer:  recognizer,
		Organizer:   organizer,
		Coordinator: coordinator,
		Pool:        pool,
	}
}
