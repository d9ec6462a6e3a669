package led

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOp struct {
	kind    string // "timer" | "channel" | "set" | "commit"
	channel int
	duty    int
}

type fakeDriver struct {
	ops     []fakeOp
	latched map[int]int
	failOn  string // op kind that should error, "" for none
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{latched: map[int]int{}}
}

func (f *fakeDriver) fail(kind string) error {
	if f.failOn == kind {
		return errors.New("injected " + kind + " failure")
	}
	return nil
}

func (f *fakeDriver) ConfigureTimer(bits, freq int) error {
	f.ops = append(f.ops, fakeOp{kind: "timer"})
	return f.fail("timer")
}

func (f *fakeDriver) ConfigureChannel(channel, gpio, initialDuty int) error {
	f.ops = append(f.ops, fakeOp{kind: "channel", channel: channel, duty: initialDuty})
	if err := f.fail("channel"); err != nil {
		return err
	}
	f.latched[channel] = initialDuty
	return nil
}

func (f *fakeDriver) SetDuty(channel, duty int) error {
	f.ops = append(f.ops, fakeOp{kind: "set", channel: channel, duty: duty})
	return f.fail("set")
}

func (f *fakeDriver) Commit(channel int) error {
	f.ops = append(f.ops, fakeOp{kind: "commit", channel: channel})
	if err := f.fail("commit"); err != nil {
		return err
	}
	for i := len(f.ops) - 1; i >= 0; i-- {
		if f.ops[i].kind == "set" && f.ops[i].channel == channel {
			f.latched[channel] = f.ops[i].duty
			break
		}
	}
	return nil
}

func (f *fakeDriver) Close() error { return nil }

// writes returns the committed duty sequence for one channel.
func (f *fakeDriver) writes(channel int) []int {
	var out []int
	pending := 0
	for _, op := range f.ops {
		switch {
		case op.kind == "set" && op.channel == channel:
			pending = op.duty
		case op.kind == "commit" && op.channel == channel:
			out = append(out, pending)
		}
	}
	return out
}

func testController(t *testing.T, n int) (*Controller, *fakeDriver, *int) {
	t.Helper()
	leds := make([]LED, n)
	for i := range leds {
		leds[i] = LED{GPIO: 2 + i, Channel: i}
	}
	reg, err := NewRegistry(leds)
	require.NoError(t, err)
	drv := newFakeDriver()
	c, err := NewController(reg, drv, 10, 10, 10*time.Millisecond)
	require.NoError(t, err)
	sleeps := 0
	c.sleep = func(time.Duration) { sleeps++ }
	return c, drv, &sleeps
}

func TestBreatheRampShape(t *testing.T) {
	c, drv, sleeps := testController(t, 3)
	require.NoError(t, c.Breathe(1))

	got := drv.writes(1)
	require.Len(t, got, 206, "one full breathe is 103 up + 103 down")
	assert.Equal(t, 206, *sleeps, "every write is followed by a delay")

	// Up-ramp: 0..1020 in steps of 10. The 10-bit ceiling of 1023 is
	// never written; the ramp tops out at the last step multiple.
	for i := 0; i < 103; i++ {
		require.Equal(t, i*10, got[i], "up-ramp value %d", i)
	}
	// Down-ramp: 1020..0 in steps of 10, ending exactly dark.
	for i := 0; i < 103; i++ {
		require.Equal(t, 1020-i*10, got[103+i], "down-ramp value %d", i)
	}
	assert.Equal(t, 0, got[len(got)-1])
	assert.Equal(t, 0, drv.latched[1])

	// The other channels were never touched.
	assert.Empty(t, drv.writes(0))
	assert.Empty(t, drv.writes(2))
}

func TestBreatheRejectsBadIndex(t *testing.T) {
	c, drv, _ := testController(t, 3)
	assert.Error(t, c.Breathe(-1))
	assert.Error(t, c.Breathe(3))
	assert.Empty(t, drv.ops, "no hardware write on a contract violation")
}

func TestSetBrightnessContract(t *testing.T) {
	c, drv, _ := testController(t, 3)

	assert.Error(t, c.SetBrightness(-1, 0))
	assert.Error(t, c.SetBrightness(3, 0))
	assert.Error(t, c.SetBrightness(0, -1))
	assert.Error(t, c.SetBrightness(0, 1024))
	assert.Empty(t, drv.ops)

	require.NoError(t, c.SetBrightness(0, 1023))
	assert.Equal(t, []int{1023}, drv.writes(0))
}

func TestSetBrightnessIdempotent(t *testing.T) {
	c, drv, _ := testController(t, 3)
	require.NoError(t, c.SetBrightness(2, 512))
	once := drv.latched[2]
	require.NoError(t, c.SetBrightness(2, 512))
	assert.Equal(t, once, drv.latched[2], "repeating a write must not change the output")
}

func TestSetBrightnessCommitsEachWrite(t *testing.T) {
	c, drv, _ := testController(t, 1)
	require.NoError(t, c.SetBrightness(0, 100))
	require.Equal(t, []fakeOp{
		{kind: "set", channel: 0, duty: 100},
		{kind: "commit", channel: 0},
	}, drv.ops)
}

func TestNewControllerValidation(t *testing.T) {
	reg, err := NewRegistry([]LED{{GPIO: 2, Channel: 0}})
	require.NoError(t, err)
	drv := newFakeDriver()

	_, err = NewController(reg, drv, 0, 10, 0)
	assert.Error(t, err)
	_, err = NewController(reg, drv, 31, 10, 0)
	assert.Error(t, err)
	_, err = NewController(reg, drv, 10, 0, 0)
	assert.Error(t, err)
}
