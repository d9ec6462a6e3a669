// Package led holds the channel registry and the brightness/breathing
// core that the lighting patterns are built from.
package led

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/example/ledbreathe/internal/pwm"
)

// LED binds a physical GPIO pin to a hardware PWM channel. Immutable
// after construction.
type LED struct {
	GPIO    int
	Channel int
}

// Registry is the ordered, fixed set of LEDs the patterns run over.
// It is built once at startup and never mutated.
type Registry struct {
	leds []LED
}

// NewRegistry validates and freezes the LED set. It rejects an empty
// set and duplicate hardware channels; all pattern logic derives its
// bounds from the registry length.
func NewRegistry(leds []LED) (Registry, error) {
	if len(leds) == 0 {
		return Registry{}, fmt.Errorf("registry needs at least one led")
	}
	seen := make(map[int]int, len(leds))
	for i, l := range leds {
		if j, dup := seen[l.Channel]; dup {
			return Registry{}, fmt.Errorf("leds %d and %d share hardware channel %d", j, i, l.Channel)
		}
		seen[l.Channel] = i
	}
	cp := make([]LED, len(leds))
	copy(cp, leds)
	return Registry{leds: cp}, nil
}

// Len returns the number of LEDs.
func (r Registry) Len() int { return len(r.leds) }

// At returns the LED at index i. Panics on out-of-range access like a
// slice would; callers go through Controller for checked access.
func (r Registry) At(i int) LED { return r.leds[i] }

// Configure programs the shared timer and then each channel in
// registry order, all starting dark. Any driver failure aborts
// configuration; the system must not run with a half-programmed
// peripheral, so the caller treats the error as fatal.
func (r Registry) Configure(drv pwm.Driver, resolutionBits, freqHz int) error {
	if err := drv.ConfigureTimer(resolutionBits, freqHz); err != nil {
		return fmt.Errorf("configure timer: %w", err)
	}
	for i, l := range r.leds {
		if err := drv.ConfigureChannel(l.Channel, l.GPIO, 0); err != nil {
			return fmt.Errorf("configure led %d (gpio %d, channel %d): %w", i, l.GPIO, l.Channel, err)
		}
	}
	log.Info().Int("leds", len(r.leds)).Int("resolution_bits", resolutionBits).Int("freq_hz", freqHz).
		Msg("led pwm initialized")
	return nil
}
