package pwm

import (
	"fmt"
	"sync"

	"github.com/stianeikeland/go-rpio/v4"
)

// RPIO drives the Raspberry Pi's hardware PWM pins via go-rpio's
// memory-mapped registers. Only the Pi's PWM-capable pins (12, 13, 18,
// 19) accept PWM mode; other pins silently produce no output, which is
// a wiring error the caller owns.
type RPIO struct {
	mu     sync.Mutex
	cycle  uint32
	freqHz int
	pins   map[int]rpio.Pin
	staged map[int]uint32
}

func NewRPIO() (*RPIO, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("rpio open: %w", err)
	}
	return &RPIO{
		pins:   map[int]rpio.Pin{},
		staged: map[int]uint32{},
	}, nil
}

func (r *RPIO) ConfigureTimer(resolutionBits, freqHz int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// go-rpio expresses resolution as the cycle length the duty is
	// counted against, and frequency as the PWM clock rate (cycle
	// length times the carrier frequency).
	r.cycle = uint32(1) << uint(resolutionBits)
	r.freqHz = freqHz
	return nil
}

func (r *RPIO) ConfigureChannel(channel, gpioNum, initialDuty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cycle == 0 {
		return fmt.Errorf("rpio: channel %d configured before timer", channel)
	}
	pin := rpio.Pin(gpioNum)
	pin.Mode(rpio.Pwm)
	pin.Freq(r.freqHz * int(r.cycle))
	pin.DutyCycle(uint32(initialDuty), r.cycle)
	r.pins[channel] = pin
	r.staged[channel] = uint32(initialDuty)
	return nil
}

func (r *RPIO) SetDuty(channel, duty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pins[channel]; !ok {
		return fmt.Errorf("rpio: channel %d not configured", channel)
	}
	r.staged[channel] = uint32(duty)
	return nil
}

func (r *RPIO) Commit(channel int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pin, ok := r.pins[channel]
	if !ok {
		return fmt.Errorf("rpio: channel %d not configured", channel)
	}
	pin.DutyCycle(r.staged[channel], r.cycle)
	return nil
}

func (r *RPIO) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pin := range r.pins {
		pin.DutyCycle(0, r.cycle)
		pin.Mode(rpio.Output)
		pin.Low()
	}
	return rpio.Close()
}
