package animation

import (
	"fmt"
	"iter"
	"time"
)

// AnimationStatus represents the current state of an animation.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationReverse means the animation is playing toward 0.
	AnimationReverse
	// AnimationCompleted means the animation is stopped at 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value between 0 and 1 over Duration.
//
// Curve shapes the progress of each run. Always call Dispose when done so
// the ticker is released.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of a full run from 0 to 1.
	Duration time.Duration

	// Curve eases the progress of a run. Nil means linear.
	Curve Curve

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates a linear controller with the given
// duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           CurveLinear,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	c.animateTo(1, AnimationForward)
}

// Reverse animates from the current value to 0.
func (c *AnimationController) Reverse() {
	c.animateTo(0, AnimationReverse)
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.Stop()
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	progress := min(float64(elapsed)/float64(c.Duration), 1)
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	c.Stop()
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and sets the value back to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}

// Frames plays c forward from 0 and yields n evenly spaced samples of its
// value: the first at the start of the run and the last at its end. The
// package clock is replaced by clk for the duration of the iteration.
func Frames(c *AnimationController, clk *ManualClock, n int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if n <= 0 {
			return
		}
		prev := SetClock(clk)
		defer SetClock(prev)

		c.Reset()
		start := clk.Now()
		c.Forward()
		defer c.Stop()

		for i := range n {
			if n > 1 {
				clk.Set(start.Add(time.Duration(int64(c.Duration) * int64(i) / int64(n-1))))
			}
			StepTickers()
			if !yield(i, c.Value) {
				return
			}
		}
	}
}
