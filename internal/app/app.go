package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/cartcraft/backend/internal/cfg"
	v1Http "github.com/cartcraft/backend/internal/delivery/v1/http"
	"github.com/cartcraft/backend/internal/infrastructure/kafka"
	"github.com/cartcraft/backend/internal/repository/memory"
	s3Repo "github.com/cartcraft/backend/internal/repository/minio"
	"github.com/cartcraft/backend/internal/repository/pgdb"
	pgdbConv "github.com/cartcraft/backend/internal/repository/pgdb/converter/generated"
	redisRepo "github.com/cartcraft/backend/internal/repository/redis"
	redisConv "github.com/cartcraft/backend/internal/repository/redis/converter/generated"
	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/clients"
	"github.com/cartcraft/backend/pkg/closer"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/logger"
	"github.com/cartcraft/backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает каталог, заказы и HTTP-сервер. Redis, Kafka и MinIO
// подключаются только при наличии соответствующей конфигурации.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	productRepo, err := initProductRepo(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cacheRepo, err := initCacheRepo(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo, err := initImageRepo(cfg, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producer, err := initProducer(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, imageRepo, log)
	orderUC := usecase.NewOrderUC(catalogUC, usecase.NewRandIDGenerator(), producer, cfg.Order.DemoUserID, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, orderUC)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")

	return appErr
}

// initProductRepo выбирает бэкенд каталога: статический in-memory или PostgreSQL.
func initProductRepo(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.ProductRepository, error) {
	if cfg.Catalog.Backend == config.CatalogBackendMemory {
		log.Infof("Catalog backend: in-memory seed")
		return memory.NewSeededProductRepo(), nil
	}

	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, err
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, err
	}

	cl.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})

	log.Infof("Catalog backend: postgres")

	return pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverterImpl()), nil
}

func initCacheRepo(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.CacheRepository, error) {
	if cfg.Redis == nil {
		return nil, nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, err
	}

	cl.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewCacheRepo(redisClient, redisConv.NewProductConverterImpl(), cfg.Redis, log), nil
}

func initImageRepo(cfg *config.Config, log logger.Logger) (usecase.ImageRepository, error) {
	if cfg.Minio == nil {
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, err
	}

	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := clients.EnsureBucket(bucketCtx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Errorf(err, "failed to initialize MinIO bucket")
		return nil, err
	}

	return s3Repo.NewImageRepo(minioClient, cfg.Minio), nil
}

func initProducer(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.OrderEventProducer, error) {
	if cfg.Kafka == nil {
		return nil, nil
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, err
	}

	cl.Add(func(_ context.Context) error {
		return producer.Close()
	})

	return producer, nil
}
