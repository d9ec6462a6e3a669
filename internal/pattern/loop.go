// Package pattern holds the three lighting sequences and the loop that
// cycles through them forever.
package pattern

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// Strip is the slice of the LED controller the patterns need. Tests
// substitute a recording fake.
type Strip interface {
	Len() int
	Breathe(index int) error
	SetBrightness(index, duty int) error
}

// randomBreaths is how many picks the random pattern makes per run.
const randomBreaths = 6

// Loop runs the three patterns back to back, forever.
type Loop struct {
	strip      Strip
	rng        *rand.Rand
	blinkDelay time.Duration

	sleep func(time.Duration)
}

// NewLoop builds the pattern loop. blinkDelay is the pause between
// binary-counter steps and between random picks.
func NewLoop(strip Strip, rng *rand.Rand, blinkDelay time.Duration) *Loop {
	return &Loop{
		strip:      strip,
		rng:        rng,
		blinkDelay: blinkDelay,
		sleep:      time.Sleep,
	}
}

// Run cycles sweep -> binary counter -> random until the process dies.
// There is no designed shutdown path; the loop only stops with the
// process. A pattern error means a broken internal contract and is
// fatal.
func (l *Loop) Run() {
	for {
		if err := l.cycle(); err != nil {
			log.Fatal().Err(err).Msg("pattern loop failed")
		}
	}
}

func (l *Loop) cycle() error {
	if err := l.Sweep(); err != nil {
		return err
	}
	if err := l.BinaryCounter(); err != nil {
		return err
	}
	return l.Random()
}
