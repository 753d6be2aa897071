package bootstrap

import (
	"context"
	"fmt"
	"log"

	"postboard/internal/config"
	"postboard/internal/controller"
	"postboard/internal/handler"
	"postboard/internal/pkg/logger"
	"postboard/internal/repository/contract"
	"postboard/internal/repository/implementation"
	"postboard/internal/repository/memory"
	"postboard/internal/service"
	"postboard/internal/view"
	"postboard/internal/websocket"
	"postboard/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	PageController controller.IPageController
	PostController controller.IPostController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Live Feed
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(service.PostEventsTopic, pubSub)

	// 3. Blob Store (selected by config)
	store, err := NewBlobStore(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using store backend: %s", cfg.Store.Backend)

	// 4. Collection Service (restores state from the store)
	postService, err := service.NewPostService(store, sysLogger, publisherService)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: restore posts: %w", err)
	}

	// 5. WebSocket Hub + bus consumer
	feedLogger := logger.NewIsolatedLogger(cfg.App.FeedLogFilePath)
	wsHub := websocket.NewHub(feedLogger)
	go wsHub.Run()

	consumerService := service.NewConsumerService(pubSub, service.PostEventsTopic, wsHub, feedLogger)

	// 6. Presentation
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: parse templates: %w", err)
	}

	return &Container{
		PageController:  controller.NewPageController(postService, renderer, sysLogger),
		PostController:  controller.NewPostController(postService),
		ConsumerService: consumerService,
		FeedHandler:     handler.NewFeedHandler(wsHub, feedLogger),
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}, nil
}

func NewBlobStore(cfg *config.Config) (contract.BlobStore, error) {
	switch cfg.Store.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Store.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("bootstrap: connect to Redis: %w", err)
		}
		return implementation.NewRedisStore(rdb), nil

	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: connect to Postgres: %w", err)
		}
		return implementation.NewPostgresStore(db)

	case "memory":
		return memory.NewCacheStore(), nil

	case "disk":
		return implementation.NewDiskStore(cfg.Store.DataDir), nil

	default:
		return nil, fmt.Errorf("bootstrap: unknown store backend %q", cfg.Store.Backend)
	}
}
