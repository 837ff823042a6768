package field

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// CurveEaseInOut names the only motion a field uses: every attribute moves
	// together along one critically damped spring, which starts at rest and
	// settles without overshoot.
	CurveEaseInOut = "ease-in-out"

	frameRate = 60
	// Angular frequency of the spring; the motion is visually complete in under half a second.
	springFrequency = 12.0
	springDamping   = 1.0
	settleEpsilon   = 0.005
	maxFrames       = 2 * frameRate
)

// FrameInterval is the delay between animation frames.
var FrameInterval = time.Second / frameRate

// Transition animates a field from one set of attributes to another. The
// zero value is idle.
type Transition struct {
	From  Attributes
	To    Attributes
	Curve string

	spring   harmonica.Spring
	position float64
	velocity float64
	frames   int
	active   bool
}

// NewTransition starts a transition. If the two attribute sets are equal
// there is nothing to animate and the transition is returned idle.
func NewTransition(from, to Attributes) Transition {
	t := Transition{
		From:     from,
		To:       to,
		Curve:    CurveEaseInOut,
		spring:   harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		position: 0,
		active:   from != to,
	}
	if !t.active {
		t.position = 1
	}
	return t
}

// Retarget starts a new transition towards next from wherever t currently
// is. An in-flight transition is restarted from its destination, so rapid
// state flips never blend more than two attribute sets.
func (t Transition) Retarget(current, next Attributes) Transition {
	if t.active {
		current = t.To
	}
	return NewTransition(current, next)
}

// Step advances the transition by one frame.
func (t Transition) Step() Transition {
	if !t.active {
		return t
	}
	t.position, t.velocity = t.spring.Update(t.position, t.velocity, 1)
	t.frames++
	if (math.Abs(1-t.position) < settleEpsilon && math.Abs(t.velocity) < settleEpsilon) || t.frames >= maxFrames {
		t.position = 1
		t.velocity = 0
		t.active = false
	}
	return t
}

// Active reports whether frames are still pending.
func (t Transition) Active() bool {
	return t.active
}

// Progress returns how far the transition has travelled, in [0, 1].
func (t Transition) Progress() float64 {
	if !t.active {
		return 1
	}
	return math.Max(0, math.Min(1, t.position))
}

// Frames returns the number of frames already stepped.
func (t Transition) Frames() int {
	return t.frames
}
