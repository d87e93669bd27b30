package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaynvb/TodoMinimalAPI/internal/cache"
	"github.com/vijaynvb/TodoMinimalAPI/internal/config"
	"github.com/vijaynvb/TodoMinimalAPI/internal/logger"
	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type App struct {
	cfg    config.Config
	log    *logrus.Logger
	db     *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
}

// New wires storage, cache and routing from config. With an empty
// PG_DSN todos and users live in the in-memory store; with no Redis
// address the list cache is disabled.
func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg, log: logger.New("todo-api", cfg.App.LogLevel)}

	var (
		todoRepo repo.TodoRepo
		userRepo repo.UserRepo
	)
	if cfg.PG.DSN != "" {
		db, err := newPostgres(cfg.PG.DSN)
		if err != nil {
			return nil, err
		}
		a.db = db
		if err := runMigrations(cfg.PG.DSN, "./migrations"); err != nil {
			a.db.Close()
			return nil, err
		}
		todoRepo = repo.NewPGTodoRepo(db)
		userRepo = repo.NewPGUserRepo(db)
	} else {
		a.log.Warn("PG_DSN not set, using in-memory store")
		todoRepo = repo.NewMemTodoRepo()
		userRepo = repo.NewMemUserRepo()
	}

	var todoCache *cache.TodoCache
	if cfg.Redis.Addr != "" {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			if a.db != nil {
				a.db.Close()
			}
			return nil, err
		}
		a.redis = rdb
		todoCache = cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	a.router = NewRouter(cfg, a.log, todoRepo, userRepo, todoCache)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Log() *logrus.Logger {
	return a.log
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	return nil
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newCORS(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders: []string{"*"},
		MaxAge:       12 * time.Hour,
	})
}
