package bootstrap

import (
	"log"
	"os"
	"time"

	"ai-memoire-be/internal/config"
	"ai-memoire-be/internal/controller"
	"ai-memoire-be/internal/pkg/logger"
	"ai-memoire-be/internal/repository/memory"
	"ai-memoire-be/internal/service"
	"ai-memoire-be/pkg/llm/factory"
	llmrouter "ai-memoire-be/pkg/llm/router"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const sectionGeneratedTopic = "SECTION_GENERATED"

type Container struct {
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Generation Backends
	remoteProvider, err := factory.NewLLMProvider(
		cfg.Ai.RemoteProvider,
		cfg.Ai.RemoteModel,
		cfg.Ai.RemoteBaseURL,
		cfg.Ai.RemoteAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize remote LLM provider: %v", err)
	}
	localProvider, err := factory.NewLLMProvider(
		"ollama",
		cfg.Ai.OllamaModel,
		cfg.Ai.OllamaBaseURL,
		"",
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize local LLM provider: %v", err)
	}
	log.Printf("[INFO] Backends: remote %s (%s), local ollama (%s)",
		cfg.Ai.RemoteProvider, cfg.Ai.RemoteModel, cfg.Ai.OllamaModel)

	routerLogger := log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	backendRouter := llmrouter.NewRouter(remoteProvider, localProvider, routerLogger)
	backendRouter.SetProbeTimeout(time.Duration(cfg.Ai.ProbeTimeoutSeconds) * time.Second)

	// 4. In-Memory State
	sessionRepo := memory.NewSessionRepository()
	archiveRepo := memory.NewArchiveRepository()

	// 5. Services
	publisherService := service.NewPublisherService(sectionGeneratedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, sectionGeneratedTopic, sysLogger)

	assistantService := service.NewAssistantService(
		sessionRepo,
		archiveRepo,
		backendRouter,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ConsumerService:     consumerService,
	}
}
