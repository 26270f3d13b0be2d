package bootstrap

import (
	"log"
	"time"

	"activity-insights-be/internal/config"
	"activity-insights-be/internal/controller"
	"activity-insights-be/internal/pkg/logger"
	"activity-insights-be/internal/repository/memory"
	"activity-insights-be/internal/repository/unitofwork"
	"activity-insights-be/internal/service"
	"activity-insights-be/pkg/matching"

	pktNats "activity-insights-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SuggestionController controller.ISuggestionController
	MiningController     controller.IMiningController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for cmd/mine to run batch passes directly
	MiningService service.IMiningService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Mining progress goes to its own file to keep the main log clean.
	miningLogger := logger.NewIsolatedLogger(cfg.App.MiningLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (auxiliary mining notifications; degraded mode without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	matcher := matching.NewMatcher(matching.Config{
		FuzzyThreshold:         cfg.Matching.FuzzyThreshold,
		SupportWeight:          cfg.Matching.SupportWeight,
		CoverageWeight:         cfg.Matching.CoverageWeight,
		EarlyAccountMaxDays:    cfg.Matching.EarlyAccountMaxDays,
		EarlyAccountMultiplier: cfg.Matching.EarlyAccountMultiplier,
		FirstWeekMaxDays:       cfg.Matching.FirstWeekMaxDays,
		FirstWeekMultiplier:    cfg.Matching.FirstWeekMultiplier,
	})
	templateCache := memory.NewTemplateCache(time.Duration(cfg.Matching.TemplateCacheTTLMin) * time.Minute)

	miningService := service.NewMiningService(uowFactory, miningLogger, natsPub, cfg.Mining)
	suggestionService := service.NewSuggestionService(uowFactory, matcher, templateCache, sysLogger, cfg.Mining)

	publisherService := service.NewPublisherService(cfg.App.MiningTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.MiningTopic, miningService)

	// 4. Controllers
	return &Container{
		SuggestionController: controller.NewSuggestionController(suggestionService),
		MiningController:     controller.NewMiningController(publisherService),

		ConsumerService: consumerService,
		MiningService:   miningService,
	}
}
