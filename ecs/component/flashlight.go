package component

import "github.com/milk9111/colourblind/common"

// NotOn marks a timer that is not running.
const NotOn = -1.0

type FlashlightTransition int

const (
	FlashlightUnchanged FlashlightTransition = iota
	FlashlightStarted
	FlashlightExpired
	FlashlightReady
)

func (t FlashlightTransition) String() string {
	switch t {
	case FlashlightStarted:
		return "started"
	case FlashlightExpired:
		return "expired"
	case FlashlightReady:
		return "ready"
	default:
		return "unchanged"
	}
}

// Flashlight is a timed ability: Idle, then Active for Duration seconds,
// then CoolingDown for Cooldown seconds, then Idle again. Timers advance
// only through Update, so pausing the clock pauses the ability.
type Flashlight struct {
	Duration float64
	Cooldown float64
	Radius   float64

	OnElapsed         float64
	CooldownRemaining float64
	StartRequested    bool
}

var FlashlightComponent = NewComponent[Flashlight]()

func NewFlashlight(duration, cooldown, radius float64) (Flashlight, error) {
	if duration <= 0 {
		return Flashlight{}, common.NewConfigError("flashlight", "duration", "must be positive")
	}
	if cooldown <= 0 {
		return Flashlight{}, common.NewConfigError("flashlight", "cooldown", "must be positive")
	}
	if radius <= 0 {
		return Flashlight{}, common.NewConfigError("flashlight", "radius", "must be positive")
	}
	return Flashlight{
		Duration:          duration,
		Cooldown:          cooldown,
		Radius:            radius,
		OnElapsed:         NotOn,
		CooldownRemaining: NotOn,
	}, nil
}

func (f *Flashlight) Active() bool {
	return f.OnElapsed >= 0
}

func (f *Flashlight) CoolingDown() bool {
	return f.CooldownRemaining >= 0
}

func (f *Flashlight) Usable() bool {
	return !f.Active() && !f.CoolingDown()
}

// RequestStart flags a start for the next Update. It does nothing and
// returns false unless the flashlight is usable.
func (f *Flashlight) RequestStart() bool {
	if !f.Usable() {
		return false
	}
	f.StartRequested = true
	return true
}

// Reset returns the flashlight to Idle.
func (f *Flashlight) Reset() {
	f.OnElapsed = NotOn
	f.CooldownRemaining = NotOn
	f.StartRequested = false
}

// Update advances the state machine by dt seconds. At most one transition
// happens per call and a pending start request is always consumed.
func (f *Flashlight) Update(dt float64) FlashlightTransition {
	tr := FlashlightUnchanged
	switch {
	case f.Active():
		f.OnElapsed += dt
		if f.OnElapsed >= f.Duration {
			f.OnElapsed = NotOn
			f.CooldownRemaining = f.Cooldown
			tr = FlashlightExpired
		}
	case f.CoolingDown():
		f.CooldownRemaining -= dt
		if f.CooldownRemaining <= 0 {
			f.CooldownRemaining = NotOn
			tr = FlashlightReady
		}
	case f.StartRequested:
		f.OnElapsed = 0
		tr = FlashlightStarted
	}
	f.StartRequested = false
	return tr
}
