package bootstrap

import (
	"log"
	"time"

	"ai-notes-hub/internal/config"
	"ai-notes-hub/internal/controller"
	"ai-notes-hub/internal/pkg/errortracker"
	"ai-notes-hub/internal/pkg/logger"
	"ai-notes-hub/internal/repository/memory"
	"ai-notes-hub/internal/repository/unitofwork"
	"ai-notes-hub/internal/service"
	"ai-notes-hub/pkg/events"
	"ai-notes-hub/pkg/llm"
	"ai-notes-hub/pkg/llm/factory"
	"ai-notes-hub/pkg/metrics"
	pktNats "ai-notes-hub/pkg/nats"
	"ai-notes-hub/pkg/notegen"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const (
	metricsNamespace = "ai_notes_hub"
	listCacheTTL     = 30 * time.Second
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	PageController controller.IPageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	closers []func()
}

// Options replaces the infrastructure NewContainer would build itself.
// Nil fields fall back to the configured implementation.
type Options struct {
	Provider       llm.LLMProvider
	Logger         logger.ILogger
	ErrorSink      logger.ILogger
	EventPublisher events.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	opts := Options{
		Logger:    logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()),
		ErrorSink: logger.NewIsolatedLogger(cfg.App.ErrorLogFilePath),
	}

	// Initialize LLM Provider based on Config
	if cfg.Ai.LLMProvider == "openai" && cfg.Keys.OpenAI == "" {
		log.Printf("[WARN] OPENAI_API_KEY is not set; note generation will fail until it is")
	}
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		APIKey:        cfg.Keys.OpenAI,
		OpenAIBaseURL: cfg.Keys.OpenAIBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	opts.Provider = llmProvider

	// NATS is optional; without it events are simply not emitted
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			opts.EventPublisher = natsPub
		}
	}

	c := NewContainerWithOptions(db, cfg, opts)
	if opts.EventPublisher != nil {
		c.closers = append(c.closers, natsPub.Close)
	}

	return c
}

func NewContainerWithOptions(db *gorm.DB, cfg *config.Config, opts Options) *Container {
	sysLogger := opts.Logger
	if sysLogger == nil {
		sysLogger = logger.NewNopLogger()
	}
	errorSink := opts.ErrorSink
	if errorSink == nil {
		errorSink = sysLogger
	}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	listCache := memory.NewNoteListCache(listCacheTTL)
	appMetrics := metrics.NewMetrics(metricsNamespace)

	// 2. Event Bus (in-process queue for captured exceptions)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	tracker := errortracker.NewPubSubTracker(pubSub, cfg.App.ErrorTopic, sysLogger)

	// 3. Services
	generator := notegen.NewGenerator(opts.Provider, notegen.NewPromptBuilder(), notegen.GeneratorConfig{
		Model:       cfg.Ai.LLMModel,
		Temperature: cfg.Ai.Temperature,
		MaxTokens:   cfg.Ai.MaxTokens,
	})

	noteService := service.NewNoteService(
		uowFactory,
		generator,
		tracker,
		listCache,
		opts.EventPublisher,
		appMetrics,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ErrorTopic,
		errorSink,
		opts.EventPublisher,
	)

	return &Container{
		NoteController: controller.NewNoteController(noteService),
		PageController: controller.NewPageController(noteService),

		ConsumerService: consumerService,

		Metrics: appMetrics,
		Logger:  sysLogger,

		closers: []func(){
			func() { _ = pubSub.Close() },
			func() { _ = sysLogger.Sync() },
		},
	}
}

// Close releases background resources in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
