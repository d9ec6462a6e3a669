package led

import (
	"fmt"
	"time"

	"github.com/example/ledbreathe/internal/pwm"
)

// Controller writes brightness levels to the registry's channels and
// runs the breathing ramp. All index and duty arguments are
// bounds-checked; a violation is a caller bug and comes back as an
// error rather than an out-of-range hardware write.
type Controller struct {
	reg       Registry
	drv       pwm.Driver
	maxDuty   int
	step      int
	stepDelay time.Duration

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// NewController wires the registry to a driver. resolutionBits sets
// MaxDuty (2^bits - 1); step and stepDelay shape the breathing ramp.
func NewController(reg Registry, drv pwm.Driver, resolutionBits, step int, stepDelay time.Duration) (*Controller, error) {
	if resolutionBits < 1 || resolutionBits > 30 {
		return nil, fmt.Errorf("resolution %d bits out of range [1,30]", resolutionBits)
	}
	if step < 1 {
		return nil, fmt.Errorf("step %d must be positive", step)
	}
	return &Controller{
		reg:       reg,
		drv:       drv,
		maxDuty:   1<<resolutionBits - 1,
		step:      step,
		stepDelay: stepDelay,
		sleep:     time.Sleep,
	}, nil
}

// Len returns the number of LEDs under control.
func (c *Controller) Len() int { return c.reg.Len() }

// MaxDuty returns the largest writable duty value.
func (c *Controller) MaxDuty() int { return c.maxDuty }

// SetBrightness writes duty to the LED at index and latches it, so the
// physical output reflects the value when the call returns.
func (c *Controller) SetBrightness(index, duty int) error {
	if index < 0 || index >= c.reg.Len() {
		return fmt.Errorf("led index %d out of range [0,%d)", index, c.reg.Len())
	}
	if duty < 0 || duty > c.maxDuty {
		return fmt.Errorf("duty %d out of range [0,%d]", duty, c.maxDuty)
	}
	ch := c.reg.At(index).Channel
	if err := c.drv.SetDuty(ch, duty); err != nil {
		return err
	}
	return c.drv.Commit(ch)
}

// Breathe fades the LED at index from dark to full and back, blocking
// for the whole sweep (~2s with the reference constants). The up-ramp
// stops at the last step-multiple at or below MaxDuty (1020 for
// 1023/10), and the down-ramp returns from there to exactly 0. Every
// written value is held for the configured step delay.
func (c *Controller) Breathe(index int) error {
	if index < 0 || index >= c.reg.Len() {
		return fmt.Errorf("led index %d out of range [0,%d)", index, c.reg.Len())
	}
	top := 0
	for duty := 0; duty <= c.maxDuty; duty += c.step {
		if err := c.SetBrightness(index, duty); err != nil {
			return err
		}
		c.sleep(c.stepDelay)
		top = duty
	}
	for duty := top; duty >= 0; duty -= c.step {
		if err := c.SetBrightness(index, duty); err != nil {
			return err
		}
		c.sleep(c.stepDelay)
	}
	return nil
}
