package component

import (
	"errors"
	"testing"

	"github.com/milk9111/colourblind/common"
)

func mustFlashlight(t *testing.T) Flashlight {
	t.Helper()
	f, err := NewFlashlight(2, 1, 64)
	if err != nil {
		t.Fatalf("new flashlight: %v", err)
	}
	return f
}

func TestFlashlightLifecycle(t *testing.T) {
	f := mustFlashlight(t)
	if !f.Usable() || f.Active() || f.CoolingDown() {
		t.Fatalf("new flashlight should be idle: %+v", f)
	}

	if !f.RequestStart() {
		t.Fatalf("idle flashlight should accept a start")
	}
	if tr := f.Update(0.5); tr != FlashlightStarted {
		t.Fatalf("transition = %v, want started", tr)
	}
	if !f.Active() || f.OnElapsed != 0 {
		t.Fatalf("expected active with onElapsed 0, got %+v", f)
	}

	for i := 0; i < 3; i++ {
		if tr := f.Update(0.5); tr != FlashlightUnchanged {
			t.Fatalf("tick %d: unexpected transition %v", i, tr)
		}
	}
	if tr := f.Update(0.5); tr != FlashlightExpired {
		t.Fatalf("after duration: transition = %v, want expired", tr)
	}
	if f.Active() || !f.CoolingDown() || f.CooldownRemaining != 1 {
		t.Fatalf("expected cooldown=1, got %+v", f)
	}

	f.Update(0.5)
	if !f.CoolingDown() {
		t.Fatalf("should still be cooling down")
	}
	if tr := f.Update(0.5); tr != FlashlightReady {
		t.Fatalf("transition = %v, want ready", tr)
	}
	if !f.Usable() || f.CooldownRemaining != NotOn {
		t.Fatalf("expected idle after cooldown, got %+v", f)
	}
}

func TestFlashlightRequestWhenUnusable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Flashlight)
	}{
		{"active", func(f *Flashlight) { f.OnElapsed = 0.3 }},
		{"cooling_down", func(f *Flashlight) { f.CooldownRemaining = 0.7 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := mustFlashlight(t)
			tc.setup(&f)
			before := f
			if f.RequestStart() {
				t.Fatalf("request should be refused")
			}
			if f != before {
				t.Fatalf("refused request changed state: %+v -> %+v", before, f)
			}
		})
	}
}

func TestFlashlightRequestIsEdgeTriggered(t *testing.T) {
	f := mustFlashlight(t)
	f.RequestStart()
	f.Update(0.1)

	// A held key keeps setting the flag; it must be consumed without effect.
	f.StartRequested = true
	f.Update(0.1)
	if f.StartRequested {
		t.Fatalf("start request should be cleared every tick")
	}
	if f.OnElapsed < 0.1-1e-9 || f.OnElapsed > 0.1+1e-9 {
		t.Fatalf("onElapsed = %v, want 0.1", f.OnElapsed)
	}
}

func TestFlashlightReset(t *testing.T) {
	f := mustFlashlight(t)
	f.CooldownRemaining = 0.5
	f.StartRequested = true
	f.Reset()
	if !f.Usable() || f.StartRequested {
		t.Fatalf("reset should return to idle, got %+v", f)
	}
}

func TestNewFlashlightValidation(t *testing.T) {
	tests := []struct {
		name                       string
		duration, cooldown, radius float64
		field                      string
	}{
		{"zero_duration", 0, 1, 1, "duration"},
		{"negative_cooldown", 1, -1, 1, "cooldown"},
		{"zero_radius", 1, 1, 0, "radius"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFlashlight(tc.duration, tc.cooldown, tc.radius)
			var cfgErr *common.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
				t.Fatalf("expected ConfigError on %s, got %v", tc.field, err)
			}
		})
	}
}
