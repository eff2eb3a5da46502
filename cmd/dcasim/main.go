package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dcasim/internal/config"
	"dcasim/internal/ledger"
	"dcasim/internal/notifier"
	"dcasim/internal/pricecache"
	"dcasim/internal/provider"
	"dcasim/internal/report"
	"dcasim/internal/scheduler"
	"dcasim/internal/simulator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	searchQuery := flag.String("search", "", "look up ticker symbols for a company name and exit")
	daemon := flag.Bool("daemon", false, "keep running and refresh results on the configured cron schedule")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Search mode needs no simulations configured.
	if *searchQuery != "" {
		results := provider.NewTickerSearch(cfg.Proxy).Search(*searchQuery)
		fmt.Print(report.FormatSearchResults(*searchQuery, results))
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	log.Println("[INFO] dcasim starting...")

	// Init fetcher
	var fetcher provider.Fetcher
	if cfg.DataSource.Source == "stooq" {
		fetcher = provider.NewStooqFetcher(cfg.Proxy)
	} else {
		fetcher = provider.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init price cache
	var cache pricecache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := pricecache.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite price cache failed, using noop: %v", err)
			cache = pricecache.NewNoopCache()
		} else {
			cache = sc
			defer sc.Close()
		}
	} else {
		cache = pricecache.NewNoopCache()
	}

	historyStart, err := cfg.HistoryStart()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	prov := provider.New(fetcher, cache, historyStart)
	led := ledger.New()

	if !*daemon {
		runAll(cfg, prov, led, true)
		fmt.Print(report.FormatLedger(led.Rows()))
		return
	}

	// Daemon mode: cron refresh plus optional Telegram delivery.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	refresh := func() {
		led.Clear() // each refresh rebuilds the comparison table from scratch
		runAll(cfg, prov, led, false)
		summary := report.FormatLedger(led.Rows())
		log.Printf("[INFO] refresh complete:\n%s", summary)
		if tn.Enabled() {
			if err := tn.SendWithRetry(ctx, summary, 3); err != nil {
				log.Printf("[ERROR] telegram delivery: %v", err)
			}
		}
	}

	sched := scheduler.NewScheduler(refresh)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunNow()
	}

	log.Println("[INFO] dcasim is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] dcasim stopped")
}

// runAll executes every configured simulation and appends one ledger row per
// completed run. In verbose mode the per-purchase tables are printed too.
func runAll(cfg *config.Config, prov *provider.Provider, led *ledger.Ledger, verbose bool) {
	for _, sim := range cfg.Simulations {
		params, err := sim.Params()
		if err != nil {
			log.Printf("[ERROR] %s: %v", sim.Ticker, err)
			continue
		}
		series, err := prov.GetSeries(sim.Ticker)
		if err != nil {
			log.Printf("[ERROR] %s: %v", sim.Ticker, err)
			continue
		}
		records, err := simulator.Simulate(series, params)
		if err != nil {
			log.Printf("[ERROR] simulate %s: %v", sim.Ticker, err)
			continue
		}
		summary, ok := simulator.Summarize(records)
		if !ok {
			log.Printf("[WARN] %s: no purchases occurred, skipping ledger row", sim.Ticker)
			continue
		}
		if verbose {
			fmt.Print(report.FormatRecords(sim.Ticker, records))
			fmt.Print(report.FormatSummary(sim.Ticker, summary))
			fmt.Println()
		}
		led.AddRow(ledger.Row{
			Ticker:             sim.Ticker,
			StartDate:          params.StartDate,
			Investment:         params.Investment,
			Frequency:          params.Frequency,
			CustomInterval:     params.CustomIntervalDays,
			Fee:                params.Fee,
			PercentageIncrease: summary.PercentIncrease,
		})
	}
}
