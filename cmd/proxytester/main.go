package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"proxytester/internal/shared/config"
	"proxytester/internal/shared/logger"
	"proxytester/internal/shared/types"
	"proxytester/tester"
)

func main() {
	configPath := flag.String("config", "", "Path to an optional INI config file")
	urlFlag := flag.String("url", "", "Target URL probed through each proxy")
	workersFlag := flag.Int("workers", 0, "Number of probes allowed to run at once")
	timeoutFlag := flag.Duration("timeout", 0, "Per-probe timeout")
	flag.Parse()

	// 1. 加载 .ini 行为配置
	cfg := new(types.Config)
	if *configPath != "" {
		if err := config.LoadIni(cfg, *configPath); err != nil {
			// Use standard fmt before logger is initialized.
			fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", *configPath, err)
			os.Exit(1)
		}
	}

	// 1.1 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 2. Resolve options: defaults, then config file, then flags.
	opts := tester.DefaultOptions()
	if cfg.CampaignConf.URL != "" {
		opts.URL = cfg.CampaignConf.URL
	}
	if cfg.CampaignConf.Workers > 0 {
		opts.Workers = cfg.CampaignConf.Workers
	}
	if cfg.CampaignConf.TimeoutMs > 0 {
		opts.Timeout = time.Duration(cfg.CampaignConf.TimeoutMs) * time.Millisecond
	}
	if *urlFlag != "" {
		opts.URL = *urlFlag
	}
	if *workersFlag > 0 {
		opts.Workers = *workersFlag
	}
	if *timeoutFlag > 0 {
		opts.Timeout = *timeoutFlag
	}

	t, err := tester.New(opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid campaign configuration.")
	}

	files := flag.Args()
	if len(files) == 0 {
		logger.Fatal().Msg("No proxy list given. Usage: proxytester [flags] <file>...")
	}
	for _, file := range files {
		added, err := t.LoadFromFile(file)
		if err != nil {
			logger.Fatal().Err(err).Str("file", file).Msg("Failed to load proxy list.")
		}
		logger.Info().Int("count", added).Str("file", file).Msg("Proxy list loaded.")
	}

	if t.IsEmpty() {
		logger.Warn().Msg("Nothing to test.")
		return
	}

	// 3. Run the campaign and drain the stream. Ctrl-C cancels the run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l := logger.WithComponent("CLI/Report")
	total := t.Count()
	done, working := 0, 0

	for outcome := range t.Run(ctx) {
		done++
		if outcome.OK() {
			working++
			l.Info().
				Str("proxy", outcome.Proxy.URI()).
				Dur("latency", outcome.Duration).
				Str("progress", fmt.Sprintf("%d/%d", done, total)).
				Msg("Proxy working.")
		} else {
			l.Warn().
				Str("proxy", outcome.Proxy.URI()).
				Err(outcome.Err).
				Str("progress", fmt.Sprintf("%d/%d", done, total)).
				Msg("Proxy failed.")
		}
	}

	if ctx.Err() != nil {
		logger.Warn().Int("tested", done).Int("total", total).Msg("Campaign cancelled.")
		return
	}
	logger.Info().Int("working", working).Int("failed", done-working).Msg("Campaign complete.")
}
