package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/santaluzia/hospital-booking/internal/api"
	"github.com/santaluzia/hospital-booking/internal/booking"
	"github.com/santaluzia/hospital-booking/internal/config"
	"github.com/santaluzia/hospital-booking/internal/content"
	"github.com/santaluzia/hospital-booking/internal/identity"
	redisclient "github.com/santaluzia/hospital-booking/internal/redis"
	"github.com/santaluzia/hospital-booking/internal/schedule"
)

const version = "1.0.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pick the session store backend: Redis when configured, a local file
	// store otherwise.
	var store identity.Store
	if cfg.RedisAddr != "" {
		rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connection error: %v", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Printf("error closing redis: %v", err)
			}
		}()
		store = identity.NewRedisStore(rdb)
		log.Printf("session store: redis addr=%s", cfg.RedisAddr)
	} else {
		fs, err := identity.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("file store error: %v", err)
		}
		store = fs
		log.Printf("session store: file dir=%s", cfg.DataDir)
	}

	dir := identity.NewDirectory()
	if cfg.AccountsFile != "" {
		n, err := dir.LoadFile(cfg.AccountsFile)
		if err != nil {
			log.Printf("accounts file error: %v", err)
		} else {
			log.Printf("loaded %d extra accounts from %s", n, cfg.AccountsFile)
		}
	}
	log.Printf("account directory ready with %d accounts", dir.Len())

	sessions := identity.NewManager(store, dir, cfg.MockLatency).WithIdleTTL(cfg.SessionIdleTTL)

	roster := schedule.DefaultRoster()
	provider := schedule.NewDeterministicProvider(roster)
	drafts := booking.NewDraftStore(cfg.DraftTTL)
	repo := booking.NewMemoryRepository()
	bookingSvc := booking.NewService(repo, roster, provider, drafts)

	if err := bookingSvc.SeedDemo(rootCtx); err != nil {
		log.Fatalf("seed demo appointments: %v", err)
	}

	go drafts.PruneLoop(rootCtx, cfg.PruneInterval)
	go sessions.PruneLoop(rootCtx, cfg.PruneInterval)

	router := api.NewRouter(api.RouterConfig{
		Sessions: sessions,
		Booking:  bookingSvc,
		Roster:   roster,
		Inbox:    content.NewInbox(),
		Store:    store,
		Env:      cfg.Env,
		Version:  version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
