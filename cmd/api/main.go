package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/sessions"

	"github.com/BruksfildServices01/controle-exames/internal/config"
	dbpkg "github.com/BruksfildServices01/controle-exames/internal/db"
	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/infra/archive"
	"github.com/BruksfildServices01/controle-exames/internal/infra/gateway"
	"github.com/BruksfildServices01/controle-exames/internal/logger"
	"github.com/BruksfildServices01/controle-exames/internal/middleware"
	"github.com/BruksfildServices01/controle-exames/internal/models"
	"github.com/BruksfildServices01/controle-exames/internal/routes"
	"github.com/BruksfildServices01/controle-exames/internal/session"
	"github.com/BruksfildServices01/controle-exames/internal/timezone"
	ucExam "github.com/BruksfildServices01/controle-exames/internal/usecase/exam"
	"github.com/BruksfildServices01/controle-exames/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	log := logger.NewSlog(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, closeGateway, err := openGateway(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeGateway()

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var archiver ucExam.Archiver = archive.Noop{}
	if cfg.ArchiveEnabled() {
		archiver = archive.NewS3Archive(archive.S3Options{
			Bucket:    cfg.ArchiveBucket,
			Endpoint:  cfg.ArchiveEndpoint,
			Region:    cfg.ArchiveRegion,
			AccessKey: cfg.ArchiveAccessKey,
			SecretKey: cfg.ArchiveSecretKey,
		})
		log.Info("pdf archive enabled", "bucket", cfg.ArchiveBucket)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Dependencies{
		Gateway:  gw,
		Sessions: session.NewManager(store, cfg.SessionName),
		Archiver: archiver,
		Clock:    timezone.In(cfg.Timezone),
		PDFTitle: cfg.PDFTitle,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr(), "gateway", cfg.GatewayDriver, "sessions", cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openGateway(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.Gateway, func(), error) {
	seed := models.User{Nome: cfg.SeedUserNome, Email: cfg.SeedUserEmail, Senha: cfg.SeedUserSenha}

	if cfg.GatewayDriver == config.GatewayMemory {
		gw := gateway.NewMemoryGateway()
		if cfg.SeedEnabled() {
			gw.AddUser(seed)
		}
		log.Warn("using in-memory gateway, data is lost on exit")
		return gw, func() {}, nil
	}

	db, err := dbpkg.NewDB(dbpkg.Options{DSN: cfg.DBUrl, AutoMigrate: cfg.AutoMigrate}, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.SeedEnabled() {
		if err := dbpkg.SeedUser(ctx, db, seed, log); err != nil {
			_ = dbpkg.Close(db)
			return nil, nil, err
		}
	}

	return gateway.NewGormGateway(db), func() {
		if err := dbpkg.Close(db); err != nil {
			log.Error("closing database", "error", err)
		}
	}, nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (sessions.Store, func(), error) {
	opts := session.Options{
		Name:   cfg.SessionName,
		Secret: cfg.SessionSecret,
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.SessionSecure,
	}

	if cfg.SessionBackend != config.SessionRedis {
		return session.NewCookieStore(opts), func() {}, nil
	}

	store := session.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}), opts)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
