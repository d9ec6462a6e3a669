package pattern

import "github.com/rs/zerolog/log"

// Random breathes six uniformly random LEDs with a blink delay after
// each. Picks are independent; repeats and gaps are part of the look.
func (l *Loop) Random() error {
	log.Info().Msg("pattern: random")
	for i := 0; i < randomBreaths; i++ {
		idx := l.rng.Intn(l.strip.Len())
		log.Debug().Int("led", idx).Msg("random pick")
		if err := l.strip.Breathe(idx); err != nil {
			return err
		}
		l.sleep(l.blinkDelay)
	}
	return nil
}
