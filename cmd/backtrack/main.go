package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/phinics77/back-tracking/internal/collector"
	"github.com/phinics77/back-tracking/internal/config"
	"github.com/phinics77/back-tracking/internal/notifier"
	"github.com/phinics77/back-tracking/internal/recorder"
	"github.com/phinics77/back-tracking/internal/render"
	"github.com/phinics77/back-tracking/internal/scheduler"
	"github.com/phinics77/back-tracking/internal/server"
)

var (
	flagSymbol string
	flagAmount float64
)

func loadConfig() (*config.Config, error) {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if flagSymbol != "" {
		cfg.DataSource.Symbol = flagSymbol
	}
	if flagAmount > 0 {
		cfg.Invest.Amount = flagAmount
	}
	return cfg, cfg.Validate()
}

func runEval(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	col := collector.NewCollector(collector.NewYahooFetcher(cfg.Proxy), cfg.DataSource.Symbol)
	rep, err := col.Collect(cfg.Invest.Amount, time.Now())
	if err != nil {
		return err
	}
	return render.WriteReport(os.Stdout, rep)
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	col := collector.NewCollector(collector.NewYahooFetcher(cfg.Proxy), cfg.DataSource.Symbol)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	sched := scheduler.NewScheduler(col, cfg.Invest.Amount, tn, rec)
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, evaluating now")
		go sched.RunOnce()
	}

	log.Printf("[INFO] watching %s on schedule %q. Press Ctrl+C to stop.",
		cfg.DataSource.Symbol, cfg.Schedule.WatchCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	srv := &server.Server{
		Fetcher:       collector.NewYahooFetcher(cfg.Proxy),
		DefaultSymbol: cfg.DataSource.Symbol,
		DefaultAmount: cfg.Invest.Amount,
	}
	log.Printf("[INFO] serving on %s", cfg.Server.ListenAddr)
	return http.ListenAndServe(cfg.Server.ListenAddr, srv.Handler())
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	root := &cobra.Command{
		Use:          "backtrack",
		Short:        "回看定投：how a past one-time purchase would perform today",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flagSymbol, "symbol", "s", "", "ticker symbol (overrides config)")
	root.PersistentFlags().Float64VarP(&flagAmount, "amount", "a", 0, "investment amount (overrides config)")

	root.AddCommand(
		&cobra.Command{Use: "eval", Short: "evaluate once and print result cards", RunE: runEval},
		&cobra.Command{Use: "watch", Short: "re-evaluate on a cron schedule", RunE: runWatch},
		&cobra.Command{Use: "serve", Short: "serve the evaluation as a JSON API", RunE: runServe},
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}
