package app

import (
	"context"
	"fmt"
	"time"

	"bonrecords/config"
	"bonrecords/db"
	"bonrecords/kv"
	"bonrecords/logger"
	"bonrecords/metrics"
	"bonrecords/records"
	"bonrecords/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Short aliases for handlers.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router  *gin.Engine
	Config  *config.Config
	Logger  *zap.Logger
	KV      kv.Store
	Session *session.Store
	Records *records.Repo
	Metrics *metrics.Metrics
}

// New opens the configured key/value backend and assembles the app.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	store, err := openKV(ctx, cfg, logger.Named(log, "kv"))
	if err != nil {
		return nil, err
	}
	return Assemble(cfg, log, store, nil), nil
}

// Assemble wires an App around an already opened store. A nil clock uses
// time.Now.
func Assemble(cfg *config.Config, log *zap.Logger, store kv.Store, clock func() time.Time) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	m := metrics.New()
	repo := records.New(records.Options{
		Clock:   clock,
		Delay:   cfg.LoadDelay,
		TaxRate: decimal.NullDecimal{Decimal: cfg.TaxRate, Valid: true},
		Logger:  logger.Named(log, "records"),
	})
	repo.Watch(m.SetRecords)

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger.Named(log, "http")), m.Middleware())
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:  r,
		Config:  cfg,
		Logger:  log,
		KV:      store,
		Session: session.NewStore(store, logger.Named(log, "session")),
		Records: repo,
		Metrics: m,
	}
}

func (a *App) Close() {
	if err := a.KV.Close(); err != nil {
		a.Logger.Warn("closing storage", zap.Error(err))
	}
}

func openKV(ctx context.Context, cfg *config.Config, log *zap.Logger) (kv.Store, error) {
	switch cfg.Storage {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("using redis storage", zap.String("addr", cfg.Redis.Addr), zap.String("prefix", cfg.Redis.Prefix))
		return session.NewRedisKV(rdb, cfg.Redis.Prefix), nil

	case config.BackendPostgres:
		conn, err := db.ConnectDB(cfg.Postgres.DSN(), log)
		if err != nil {
			return nil, err
		}
		log.Info("using postgres storage", zap.String("host", cfg.Postgres.Host), zap.String("db", cfg.Postgres.Name))
		return db.NewKVRepo(conn), nil

	default:
		log.Info("using in-memory storage; users and session are lost on restart")
		return kv.NewMemory(), nil
	}
}
