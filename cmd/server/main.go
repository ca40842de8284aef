package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"CycleSentinel/internal/analysis"
	"CycleSentinel/internal/api"
	"CycleSentinel/internal/collector"
	"CycleSentinel/internal/config"
	"CycleSentinel/internal/history"
	"CycleSentinel/internal/scheduler"
	"CycleSentinel/internal/ticker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CycleSentinel starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init market data gateway
	fetcher := collector.NewCoinGeckoFetcher(cfg.DataSource.PriceBaseURL, cfg.DataSource.GlobalBaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.DataSource.LookbackDays, cfg.Analysis.ATHReference)

	// Init history store
	var store history.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := history.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using json file: %v", err)
			store = history.NewFileStore("data/analysis_history.json")
		} else {
			store = ss
			defer ss.Close()
		}
	} else {
		store = history.NewFileStore(cfg.Database.HistoryFile)
	}

	analyzer := analysis.New(col, store)

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Live price ticker
	var tk *ticker.Ticker
	if cfg.Ticker.Enabled {
		tk = ticker.New(cfg.Ticker.StreamURL)
		go tk.Run(ctx)
		log.Println("[INFO] live ticker started")
	}

	// Daily pre-computation
	sched := scheduler.NewScheduler(ctx, analyzer)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily analysis now")
		go sched.RunNow()
	}

	// HTTP API
	router := api.NewRouter(analyzer, tk, cfg.Server.AllowedOrigins)
	srv := &http.Server{Addr: cfg.Server.Listen, Handler: router}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] CycleSentinel stopped")
}
