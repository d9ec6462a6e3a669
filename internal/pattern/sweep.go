package pattern

import "github.com/rs/zerolog/log"

// Sweep breathes each LED left to right, then sweeps back right to
// left skipping both endpoints so neither breathes twice in a row.
// For three LEDs the visit order is 0, 1, 2, 1.
func (l *Loop) Sweep() error {
	log.Info().Msg("pattern: sweep")
	n := l.strip.Len()
	for i := 0; i < n; i++ {
		if err := l.strip.Breathe(i); err != nil {
			return err
		}
	}
	for i := n - 2; i > 0; i-- {
		if err := l.strip.Breathe(i); err != nil {
			return err
		}
	}
	return nil
}
