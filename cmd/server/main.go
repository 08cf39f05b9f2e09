package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"doctor-booking-api/internal/catalog"
	"doctor-booking-api/internal/config"
	"doctor-booking-api/internal/handler"
	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/middleware"
	"doctor-booking-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	kvs, cleanup, err := openKV(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer cleanup()
	log.Printf("storage backend: %s", cfg.KVBackend)

	st := store.New(kvs)
	appts := store.NewAppointments(kvs)
	sessions := store.NewSession(kvs, st, appts, cfg.SessionSecret, cfg.AutoLoginAfterRegister)
	sessions.Init(ctx)

	cat := catalog.New(catalog.WithDelay(cfg.CatalogDelay))
	h := handler.New(sessions, appts, cat, cfg.SessionSecret, cfg.PaymentDelay)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	rl := middleware.NewRateLimiter(5, 10)
	h.Routes(r, rl)

	// hourly sweep of lapsed 24h sessions
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		sessions.ExpireStale(context.Background())
	}); err != nil {
		log.Printf("cron: %v", err)
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	srv.Close()
}

func openKV(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.KVBackend {
	case "file":
		return kv.NewFile(cfg.KVFile), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return kv.NewRedis(client), func() { client.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		pg := kv.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	default:
		return kv.NewMemory(), func() {}, nil
	}
}
