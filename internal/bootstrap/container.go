package bootstrap

import (
	"time"

	"invoicing-be/internal/config"
	"invoicing-be/internal/controller"
	"invoicing-be/internal/pkg/logger"
	"invoicing-be/internal/repository/unitofwork"
	"invoicing-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InvoiceController controller.IInvoiceController
	AddressController controller.IAddressController
	StatsController   controller.IStatsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.InvoiceTopic, pubSub)
	statsService := service.NewStatsService(
		uowFactory,
		time.Duration(cfg.Events.StatsCacheTTLSecs)*time.Second,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.InvoiceTopic,
		statsService,
		sysLogger,
	)

	invoiceService := service.NewInvoiceService(uowFactory, publisherService, sysLogger)
	addressService := service.NewAddressService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		InvoiceController: controller.NewInvoiceController(invoiceService),
		AddressController: controller.NewAddressController(addressService),
		StatsController:   controller.NewStatsController(statsService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
