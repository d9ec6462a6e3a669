package pwm

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Periph drives PWM-capable GPIO pins through periph.io host drivers.
// The peripheral has no staged/latched split of its own, so SetDuty
// stages in memory and Commit performs the pin write.
type Periph struct {
	mu      sync.Mutex
	maxDuty int
	freq    physic.Frequency
	pins    map[int]gpio.PinIO
	staged  map[int]int
}

func NewPeriph() (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	return &Periph{
		pins:   map[int]gpio.PinIO{},
		staged: map[int]int{},
	}, nil
}

func (p *Periph) ConfigureTimer(resolutionBits, freqHz int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxDuty = 1<<resolutionBits - 1
	p.freq = physic.Frequency(freqHz) * physic.Hertz
	return nil
}

func (p *Periph) ConfigureChannel(channel, gpioNum, initialDuty int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.maxDuty == 0 {
		return fmt.Errorf("periph: channel %d configured before timer", channel)
	}
	name := fmt.Sprintf("GPIO%d", gpioNum)
	pin := gpioreg.ByName(name)
	if pin == nil {
		return fmt.Errorf("periph: no such pin %s", name)
	}
	if err := pin.PWM(p.scale(initialDuty), p.freq); err != nil {
		return fmt.Errorf("periph: pwm on %s: %w", name, err)
	}
	p.pins[channel] = pin
	p.staged[channel] = initialDuty
	return nil
}

func (p *Periph) SetDuty(channel, duty int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.pins[channel]; !ok {
		return fmt.Errorf("periph: channel %d not configured", channel)
	}
	p.staged[channel] = duty
	return nil
}

func (p *Periph) Commit(channel int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	pin, ok := p.pins[channel]
	if !ok {
		return fmt.Errorf("periph: channel %d not configured", channel)
	}
	if err := pin.PWM(p.scale(p.staged[channel]), p.freq); err != nil {
		return fmt.Errorf("periph: pwm on %s: %w", pin.Name(), err)
	}
	return nil
}

// scale maps a duty in [0, maxDuty] onto periph's 24-bit duty range.
func (p *Periph) scale(duty int) gpio.Duty {
	return gpio.Duty(int64(duty) * int64(gpio.DutyMax) / int64(p.maxDuty))
}

func (p *Periph) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var first error
	for _, pin := range p.pins {
		if err := pin.Halt(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
