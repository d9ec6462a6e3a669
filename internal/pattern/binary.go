package pattern

import "github.com/rs/zerolog/log"

// BinaryCounter walks every N-bit value in order, breathing the LEDs
// whose bit is set (LSB maps to LED 0) and snapping the rest dark,
// with a blink delay between counts.
func (l *Loop) BinaryCounter() error {
	log.Info().Msg("pattern: binary counter")
	n := l.strip.Len()
	maxCount := 1 << uint(n)
	for count := 0; count < maxCount; count++ {
		for i := 0; i < n; i++ {
			if count>>uint(i)&1 == 1 {
				if err := l.strip.Breathe(i); err != nil {
					return err
				}
			} else if err := l.strip.SetBrightness(i, 0); err != nil {
				return err
			}
		}
		l.sleep(l.blinkDelay)
	}
	return nil
}
