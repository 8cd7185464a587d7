package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/slingshot/internal/sim"
)

// Shot is one scripted launch: the release velocity and, when positive, the
// delay in seconds after release at which the bird's ability fires.
type Shot struct {
	VX, VY       float64
	AbilityDelay float64
}

// String formats the shot in the form ParseShot accepts.
func (s Shot) String() string {
	v := fmt.Sprintf("%g,%g", s.VX, s.VY)
	if s.AbilityDelay > 0 {
		v += fmt.Sprintf(",%g", s.AbilityDelay)
	}
	return v
}

// ParseShot parses "vx,vy" or "vx,vy,abilityDelay".
func ParseShot(s string) (Shot, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Shot{}, fmt.Errorf("invalid shot %q: want vx,vy[,abilityDelay]", s)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Shot{}, fmt.Errorf("invalid shot %q: %w", s, err)
		}
		vals[i] = v
	}

	shot := Shot{VX: vals[0], VY: vals[1]}
	if len(vals) == 3 {
		if vals[2] < 0 {
			return Shot{}, fmt.Errorf("invalid shot %q: negative ability delay", s)
		}
		shot.AbilityDelay = vals[2]
	}
	return shot, nil
}

// ScriptEvent reports a scripted action to the caller.
type ScriptEvent struct {
	Shot    int // Index into the shot list
	Ability bool
	Fired   bool // False when the world ignored the request
	Tick    uint64
	Score   int
}

// ScriptResult summarizes a scripted round.
type ScriptResult struct {
	Fired    int     // Shots accepted by the world
	Step     float64 // Seconds simulated per tick
	TimedOut bool
	Snapshot sim.Snapshot
}

// RunScript plays shots against w with a fixed dt until the round ends, the
// shots run out and the scene settles, or maxSeconds of simulated time pass.
// Each shot waits for the next bird to reach the slingshot. onEvent may be
// nil. dt is capped at the world's MaxStep, as World.Step does.
func RunScript(w *sim.World, shots []Shot, dt, maxSeconds float64, onEvent func(ScriptEvent)) ScriptResult {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	if maxStep := w.Tuning().MaxStep; maxStep > 0 && dt > maxStep {
		dt = maxStep
	}
	maxTicks := uint64(maxSeconds / dt)
	res := ScriptResult{Step: dt}

	emit := func(ev ScriptEvent) {
		ev.Tick = w.Ticks()
		ev.Score = w.Score()
		if onEvent != nil {
			onEvent(ev)
		}
	}
	timedOut := func() bool {
		return w.Ticks() >= maxTicks
	}

	for i, shot := range shots {
		// Wait for a bird on the slingshot.
		for w.Result() == sim.ResultPlaying && !readyToLaunch(w) && !timedOut() {
			w.Step(dt)
		}
		if w.Result() != sim.ResultPlaying || timedOut() {
			break
		}

		fired := w.Launch(shot.VX, shot.VY)
		emit(ScriptEvent{Shot: i, Fired: fired})
		if !fired {
			continue
		}
		res.Fired++

		if shot.AbilityDelay > 0 {
			for elapsed := 0.0; elapsed < shot.AbilityDelay && w.Result() == sim.ResultPlaying && !timedOut(); elapsed += dt {
				w.Step(dt)
			}
			if w.Result() == sim.ResultPlaying {
				emit(ScriptEvent{Shot: i, Ability: true, Fired: w.TriggerAbility()})
			}
		}
	}

	// Let the last shots play out.
	for w.Result() == sim.ResultPlaying && !timedOut() && !readyToLaunch(w) {
		w.Step(dt)
	}

	res.TimedOut = w.Result() == sim.ResultPlaying && timedOut()
	res.Snapshot = w.Snapshot()
	return res
}

// readyToLaunch reports whether an unlaunched bird sits on the slingshot.
func readyToLaunch(w *sim.World) bool {
	b := w.ActiveBird()
	return b != nil && !b.Launched
}
