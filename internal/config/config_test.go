package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
driver: rpio
resolution_bits: 8
freq_hz: 1000
step_size: 5
step_delay_ms: 20
blink_delay_ms: 100
leds:
  - gpio: 12
    channel: 0
  - gpio: 13
    channel: 1
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Driver != "rpio" || c.ResolutionBits != 8 || len(c.LEDs) != 2 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.LEDs[1].GPIO != 13 || c.LEDs[1].Channel != 1 {
		t.Fatalf("unexpected led entry: %+v", c.LEDs[1])
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"no leds":        "resolution_bits: 10\nfreq_hz: 5000\nstep_size: 10\n",
		"bad resolution": "resolution_bits: 31\nfreq_hz: 5000\nstep_size: 10\nleds: [{gpio: 2, channel: 0}]\n",
		"zero freq":      "resolution_bits: 10\nfreq_hz: 0\nstep_size: 10\nleds: [{gpio: 2, channel: 0}]\n",
		"zero step":      "resolution_bits: 10\nfreq_hz: 5000\nstep_size: 0\nleds: [{gpio: 2, channel: 0}]\n",
	} {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if c.FreqHz != 5000 || len(c.LEDs) != 3 {
		t.Fatalf("round trip mangled config: %+v", c)
	}
}
