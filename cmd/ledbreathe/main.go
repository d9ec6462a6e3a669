package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/ledbreathe/internal/app"
	"github.com/example/ledbreathe/internal/config"
	"github.com/example/ledbreathe/internal/pwm"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		driver     = flag.String("driver", "", "pwm driver: sim | periph | rpio (overrides config)")
		initConfig = flag.Bool("init-config", false, "write the default config to -config and exit")
		debug      = flag.Bool("debug", false, "log per-write duty values")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !*debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *initConfig {
		if err := config.Save(*configPath, config.Default()); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("write config failed")
		}
		log.Info().Str("path", *configPath).Msg("default config written")
		return
	}

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
	} else {
		cfg = c
	}
	if *driver != "" {
		cfg.Driver = *driver
	}

	drv, err := pwm.New(cfg.Driver)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("pwm driver init failed")
	}

	log.Info().Str("driver", cfg.Driver).Int("leds", len(cfg.LEDs)).Msg("breathing led demo starting")
	if _, err := app.Start(cfg, drv); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	// The pattern worker runs until the process is killed; all we do
	// here is blank the outputs on the way out.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")
	if err := drv.Close(); err != nil {
		log.Warn().Err(err).Msg("driver close failed")
	}
}
