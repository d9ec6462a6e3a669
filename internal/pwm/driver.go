// Package pwm abstracts the hardware PWM peripheral behind a small
// staged-write driver interface, with sim, periph.io and go-rpio
// backends.
package pwm

// Driver abstracts a multi-channel PWM peripheral sharing one timer.
//
// SetDuty stages a duty value for a channel; Commit latches it to the
// physical output. Callers that want the output updated before they
// proceed must pair the two.
type Driver interface {
	// ConfigureTimer programs the shared timer: duty resolution in bits
	// and the PWM carrier frequency in Hz. Must be called before any
	// channel is configured.
	ConfigureTimer(resolutionBits, freqHz int) error
	// ConfigureChannel binds a hardware channel to a GPIO pin on the
	// shared timer, starting at initialDuty.
	ConfigureChannel(channel, gpio, initialDuty int) error
	// SetDuty stages duty for a configured channel.
	SetDuty(channel, duty int) error
	// Commit latches the staged duty to the output.
	Commit(channel int) error
	// Close releases resources and blanks the outputs where the
	// hardware allows it.
	Close() error
}

// New constructs the named backend: "sim", "periph" or "rpio".
func New(name string) (Driver, error) {
	switch name {
	case "", "sim":
		return NewSim(), nil
	case "periph":
		return NewPeriph()
	case "rpio":
		return NewRPIO()
	default:
		return nil, &UnknownDriverError{Name: name}
	}
}

// UnknownDriverError is returned by New for an unrecognized backend name.
type UnknownDriverError struct {
	Name string
}

func (e *UnknownDriverError) Error() string {
	return "unknown pwm driver: " + e.Name
}
