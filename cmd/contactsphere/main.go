package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	myPostgresRepo "github.com/Miraines/ContactSphere/internal/adapters/db/postgres"
	myRedisRepo "github.com/Miraines/ContactSphere/internal/adapters/db/redis"
	transporthttp "github.com/Miraines/ContactSphere/internal/adapters/transport/http"
	authsvc "github.com/Miraines/ContactSphere/internal/app/auth/service"
	"github.com/Miraines/ContactSphere/internal/app/auth/token"
	"github.com/Miraines/ContactSphere/internal/app/avatar"
	contactsvc "github.com/Miraines/ContactSphere/internal/app/contacts/service"
	"github.com/Miraines/ContactSphere/internal/app/email"
	"github.com/Miraines/ContactSphere/internal/infra/config"
	lg "github.com/Miraines/ContactSphere/internal/infra/log"
	"github.com/Miraines/ContactSphere/internal/infra/migrate"
	"golang.org/x/sync/errgroup"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	zapLog := lg.Must(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	redisCli := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisCli.Close()

	validate := validator.New()

	userRepo := myPostgresRepo.NewUserRepo(db)
	contactRepo := myPostgresRepo.NewContactRepo(db)
	identityCache := myRedisRepo.NewIdentityCache(redisCli, cfg.CacheTTL)

	codec, err := token.NewCodec(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token codec", zap.Error(err))
	}

	mailer, err := email.NewSMTPSender(cfg)
	if err != nil {
		zapLog.Fatal("failed to init mail sender", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.AvatarDir, 0o755); err != nil {
		zapLog.Fatal("avatar dir", zap.Error(err))
	}
	uploader := avatar.NewDirUploader(cfg.AvatarDir, cfg.AvatarBaseURL)

	auth := authsvc.New(userRepo, identityCache, codec, mailer, cfg, validate, zapLog)
	contacts := contactsvc.New(contactRepo, validate)

	router := transporthttp.NewRouter(auth, contacts, uploader, cfg, zapLog)
	engine := router.Engine()
	engine.Static("/avatars", cfg.AvatarDir)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: engine}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		return srv.Shutdown(ctxShutdown)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
