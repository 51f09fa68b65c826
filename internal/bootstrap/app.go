package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"studydesk/internal/app"
	"studydesk/internal/assistant"
	"studydesk/internal/cache"
	"studydesk/internal/config"
	"studydesk/internal/model"
	mysqlClient "studydesk/internal/platform/mysql"
	rabbitmqClient "studydesk/internal/platform/rabbitmq"
	redisClient "studydesk/internal/platform/redis"
	s3Client "studydesk/internal/platform/s3"
	"studydesk/internal/repository"
	"studydesk/internal/worker"
)

type App struct {
	Config        *config.Config
	Logger        *zap.Logger
	MySQL         *gorm.DB
	Redis         *redis.Client
	MQConn        *amqp.Connection
	Objects       *s3Client.Client
	MessageWorker *worker.MessagePersistWorker

	AuthService     *app.AuthService
	FolderService   *app.FolderService
	DocumentService *app.DocumentService
	ChatService     *app.ChatService

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger failed: %w", err)
	}

	mysqlDB, err := mysqlClient.Connect(ctx, cfg.MySQL)
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.Folder{},
		&model.Document{},
		&model.Chat{},
		&model.Message{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.Connect(ctx, cfg.RabbitMQ)
	if err != nil {
		return nil, err
	}

	objects := s3Client.New(cfg.S3)

	userRepo := repository.NewUserRepository(mysqlDB)
	folderRepo := repository.NewFolderRepository(mysqlDB)
	documentRepo := repository.NewDocumentRepository(mysqlDB)
	chatRepo := repository.NewChatRepository(mysqlDB)
	messageRepo := repository.NewMessageRepository(mysqlDB)

	messageWorker := worker.NewMessagePersistWorker(mqConn, messageRepo, cfg.RabbitMQ.MessagePersistQueue, logger)
	if err := messageWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start message worker failed: %w", err)
	}

	publisher := rabbitmqClient.NewMessagePublisher(mqConn, cfg.RabbitMQ.MessagePersistQueue)
	historyCache := cache.NewHistoryCache(
		redisCli,
		time.Duration(cfg.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(cfg.Redis.HistoryDirtyTTLSeconds)*time.Second,
	)

	searchDelay := time.Duration(cfg.Assistant.SearchDelayMillis) * time.Millisecond
	responder := assistant.NewSimulated(
		assistant.BiasedDecider(cfg.Assistant.PDFBias),
		assistant.NewWebSearcher(searchDelay),
		assistant.NewAnalyzer(searchDelay),
	)

	authService := app.NewAuthService(
		userRepo,
		folderRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute,
	)
	folderService := app.NewFolderService(folderRepo)
	documentService := app.NewDocumentService(documentRepo, objects, int64(cfg.Assistant.MaxUploadMB)<<20)
	chatService := app.NewChatService(
		chatRepo,
		messageRepo,
		folderRepo,
		documentRepo,
		publisher,
		historyCache,
		responder,
		time.Duration(cfg.Assistant.ReplyDelayMillis)*time.Millisecond,
		logger,
	)

	return &App{
		Config:          cfg,
		Logger:          logger,
		MySQL:           mysqlDB,
		Redis:           redisCli,
		MQConn:          mqConn,
		Objects:         objects,
		MessageWorker:   messageWorker,
		AuthService:     authService,
		FolderService:   folderService,
		DocumentService: documentService,
		ChatService:     chatService,
		StartedAt:       time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.ChatService != nil {
		a.ChatService.Close()
	}
	if a.MessageWorker != nil {
		a.MessageWorker.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return closeErr
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
