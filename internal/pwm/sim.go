package pwm

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Sim is a headless Driver that latches duty values in memory and logs
// writes at debug level. Useful on dev machines without PWM hardware.
type Sim struct {
	mu      sync.Mutex
	maxDuty int
	freqHz  int
	pins    map[int]int // channel -> gpio
	staged  map[int]int // channel -> staged duty
	latched map[int]int // channel -> committed duty
}

func NewSim() *Sim {
	return &Sim{
		pins:    map[int]int{},
		staged:  map[int]int{},
		latched: map[int]int{},
	}
}

func (s *Sim) ConfigureTimer(resolutionBits, freqHz int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxDuty = 1<<resolutionBits - 1
	s.freqHz = freqHz
	log.Debug().Int("resolution_bits", resolutionBits).Int("freq_hz", freqHz).Msg("sim: timer configured")
	return nil
}

func (s *Sim) ConfigureChannel(channel, gpio, initialDuty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxDuty == 0 {
		return fmt.Errorf("sim: channel %d configured before timer", channel)
	}
	s.pins[channel] = gpio
	s.staged[channel] = initialDuty
	s.latched[channel] = initialDuty
	log.Debug().Int("channel", channel).Int("gpio", gpio).Msg("sim: channel configured")
	return nil
}

func (s *Sim) SetDuty(channel, duty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pins[channel]; !ok {
		return fmt.Errorf("sim: channel %d not configured", channel)
	}
	s.staged[channel] = duty
	return nil
}

func (s *Sim) Commit(channel int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pins[channel]; !ok {
		return fmt.Errorf("sim: channel %d not configured", channel)
	}
	s.latched[channel] = s.staged[channel]
	log.Debug().Int("channel", channel).Int("duty", s.latched[channel]).Msg("sim: duty")
	return nil
}

// Duty reports the last committed duty for a channel.
func (s *Sim) Duty(channel int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latched[channel]
}

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.latched {
		s.staged[ch] = 0
		s.latched[ch] = 0
	}
	return nil
}
