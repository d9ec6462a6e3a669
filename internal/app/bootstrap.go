// Package app wires config, driver, controller and pattern loop into
// the running system.
package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/ledbreathe/internal/config"
	"github.com/example/ledbreathe/internal/led"
	"github.com/example/ledbreathe/internal/pattern"
	"github.com/example/ledbreathe/internal/pwm"
)

// Core holds the long-lived pieces for the caller (mainly so main can
// reach the controller if it ever needs to).
type Core struct {
	Strip *led.Controller
	Loop  *pattern.Loop
}

// Start configures the hardware, seeds the PRNG and launches the
// pattern loop in the background. It returns once the worker is
// running. If hardware configuration fails the worker is never
// started and the error is returned for the caller to treat as fatal.
func Start(cfg *config.Config, drv pwm.Driver) (*Core, error) {
	leds := make([]led.LED, len(cfg.LEDs))
	for i, l := range cfg.LEDs {
		leds[i] = led.LED{GPIO: l.GPIO, Channel: l.Channel}
	}
	reg, err := led.NewRegistry(leds)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	if err := reg.Configure(drv, cfg.ResolutionBits, cfg.FreqHz); err != nil {
		return nil, fmt.Errorf("hardware init: %w", err)
	}

	strip, err := led.NewController(reg, drv, cfg.ResolutionBits, cfg.StepSize,
		time.Duration(cfg.StepDelayMs)*time.Millisecond)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed()))
	loop := pattern.NewLoop(strip, rng, time.Duration(cfg.BlinkDelayMs)*time.Millisecond)
	go loop.Run()

	return &Core{Strip: strip, Loop: loop}, nil
}

// seed draws 8 bytes of hardware entropy, falling back to the clock if
// the entropy source is unavailable.
func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Warn().Err(err).Msg("entropy read failed; seeding from clock")
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
