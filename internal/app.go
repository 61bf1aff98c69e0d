package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	token_adapter "github.com/mnasyf821-dotcom/palcars/internal/adapters/jwt"
	logger_adapter "github.com/mnasyf821-dotcom/palcars/internal/adapters/logger"
	"github.com/mnasyf821-dotcom/palcars/internal/adapters/memory"
	postgres_adapter "github.com/mnasyf821-dotcom/palcars/internal/adapters/postgres"
	rabbitmq_adapter "github.com/mnasyf821-dotcom/palcars/internal/adapters/rabbitmq"
	redis_adapter "github.com/mnasyf821-dotcom/palcars/internal/adapters/redis"
	"github.com/mnasyf821-dotcom/palcars/internal/adapters/rest"
	"github.com/mnasyf821-dotcom/palcars/internal/configs"
	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/usecase"
	fluentlogger "github.com/mnasyf821-dotcom/palcars/pkg/fluent_logger"
	"github.com/mnasyf821-dotcom/palcars/pkg/postgres"
	"github.com/mnasyf821-dotcom/palcars/pkg/rabbitmq/rabbitmq_common"
	"github.com/mnasyf821-dotcom/palcars/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	dbPool             *pgxpool.Pool
	redisClient        *goredis.Client
	connManager        *rabbitmq_common.ConnectionManager
	submissionProducer *rabbitmq_producer.Publisher
}

// NewApp создает экземпляр приложения и связывает все зависимости.
// Postgres, Redis и RabbitMQ подключаются только если заданы в конфигурации,
// иначе используются хранилища в памяти.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})
	if appConfig.Auth.DevSecret {
		appLogger.Warn("JWT_SECRET is not set, tokens are signed with the development secret", nil)
	}

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}
	// fail закрывает то, что успели открыть, и возвращает ошибку
	fail := func(msg string, err error) (*App, error) {
		appLogger.Error(msg, err, nil)
		application.closeResources()
		return nil, fmt.Errorf("%s: %w", strings.ToLower(msg), err)
	}

	// --- 2. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	catalogStore, err := memory.NewDefaultCatalogStore()
	if err != nil {
		return fail("Failed to load listings catalog", err)
	}
	appLogger.Info("Listings catalog loaded", port.Fields{"listings": catalogStore.Len()})

	var sessionStore port.SessionStorePort
	if appConfig.Redis.Addr != "" {
		redisClient, err := redis_adapter.NewClient(context.Background(), redis_adapter.Config{
			Addr:     appConfig.Redis.Addr,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if err != nil {
			return fail("Failed to connect to Redis", err)
		}
		application.redisClient = redisClient

		redisSessions, err := redis_adapter.NewSessionStore(redisClient)
		if err != nil {
			return fail("Failed to create redis session store", err)
		}
		sessionStore = redisSessions
		appLogger.Info("Sessions are stored in Redis", port.Fields{"addr": appConfig.Redis.Addr})
	} else {
		sessionStore = memory.NewSessionStore()
		appLogger.Info("REDIS_ADDR is not set, sessions are stored in memory", nil)
	}

	var submissionStorage port.SubmissionStoragePort
	if appConfig.Database.URL != "" {
		dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
			DatabaseURL: appConfig.Database.URL,
			MaxConns:    appConfig.Database.MaxConns,
		})
		if err != nil {
			return fail("Failed to connect to PostgreSQL", err)
		}
		application.dbPool = dbPool
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		submissionRepository, err := postgres_adapter.NewSubmissionRepository(dbPool)
		if err != nil {
			return fail("Failed to create submission repository", err)
		}
		if err := submissionRepository.EnsureSchema(context.Background()); err != nil {
			return fail("Failed to prepare submissions schema", err)
		}
		submissionStorage = submissionRepository
	} else {
		submissionStorage = memory.NewSubmissionStore()
		appLogger.Info("DATABASE_URL is not set, submissions are stored in memory", nil)
	}

	var submissionPublisher port.SubmissionPublisherPort = rabbitmq_adapter.NoopSubmissionPublisher{}
	if appConfig.RabbitMQ.URL != "" {
		connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
		connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
		if err != nil {
			return fail("Failed to create connection manager", err)
		}
		application.connManager = connManager
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.ListingsEventsExchange,
			ExchangeType:             constants.ListingsEventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
		}, connManager)
		if err != nil {
			return fail("Failed to create event producer", err)
		}
		application.submissionProducer = producer

		publisherAdapter, err := rabbitmq_adapter.NewSubmissionPublisherAdapter(producer, constants.RoutingKeyListingSubmitted)
		if err != nil {
			return fail("Failed to create submission publisher", err)
		}
		submissionPublisher = publisherAdapter
		appLogger.Info("RabbitMQ submission publisher initialized.", nil)
	} else {
		appLogger.Info("RABBITMQ_URL is not set, submission events are not published", nil)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSecret)
	if err != nil {
		return fail("Failed to create token service", err)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 3. USE CASES ---
	findListingsUseCase := usecase.NewFindListingsUseCase(catalogStore)
	getFeaturedUseCase := usecase.NewGetFeaturedListingsUseCase(catalogStore)
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(catalogStore)
	submitListingUseCase := usecase.NewSubmitListingUseCase(submissionStorage, submissionPublisher)

	getModelsUseCase := usecase.NewGetModelsUseCase()
	getVariantsUseCase := usecase.NewGetVariantsUseCase()
	getAvailableModelsUseCase := usecase.NewGetAvailableModelsUseCase(catalogStore)
	getModelCountsUseCase := usecase.NewGetModelCountsUseCase(catalogStore)
	getDictionariesUseCase := usecase.NewGetDictionariesUseCase()

	sessionTTL := appConfig.Auth.SessionTTL
	loginUseCase := usecase.NewLoginUseCase(sessionStore, tokenService, sessionTTL, appConfig.Auth.LoginDelay)
	registerUseCase := usecase.NewRegisterUseCase(sessionStore, tokenService, sessionTTL, appConfig.Auth.RegisterDelay)
	logoutUseCase := usecase.NewLogoutUseCase(sessionStore)
	validateSessionUseCase := usecase.NewValidateSessionUseCase(tokenService)
	getCurrentUserUseCase := usecase.NewGetCurrentUserUseCase(sessionStore)
	updateProfileUseCase := usecase.NewUpdateProfileUseCase(sessionStore, sessionTTL)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	handlers := rest.Handlers{
		Listings: rest.NewListingsHandler(
			findListingsUseCase,
			getFeaturedUseCase,
			getListingDetailsUseCase,
			submitListingUseCase,
			getCurrentUserUseCase,
			appConfig.Catalog.PageSize,
		),
		Models: rest.NewModelsHandler(getModelsUseCase, getVariantsUseCase, getAvailableModelsUseCase, getModelCountsUseCase),
		Dictionaries: rest.NewDictionariesHandler(getDictionariesUseCase),
		Auth: rest.NewAuthHandler(loginUseCase, registerUseCase, logoutUseCase, getCurrentUserUseCase, updateProfileUseCase),
		AuthMW: rest.NewAuthMiddleware(validateSessionUseCase),
	}

	application.apiServer = rest.NewServer(rest.ServerConfig{
		Port:            appConfig.Rest.Port,
		AllowedOrigins:  appConfig.Rest.AllowedOrigins,
		DefaultLanguage: appConfig.Catalog.DefaultLanguage,
	}, handlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := a.apiServer.Stop(ctx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}

		a.logger.Info("Application shut down gracefully.", nil)
		a.closeResources()
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

// closeResources закрывает внешние соединения в обратном порядке открытия
func (a *App) closeResources() {
	if a.submissionProducer != nil {
		if err := a.submissionProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}

	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Error closing Redis client", err, nil)
		}
	}

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent к этому моменту может быть недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
