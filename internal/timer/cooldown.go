// Package timer provides the timed-reactivation primitive shared by weapons,
// the boss ranged attack and the player's hit rate limit.
package timer

// Cooldown goes inactive when triggered and becomes ready again once its
// duration has elapsed. Times are in seconds. The zero value is ready.
type Cooldown struct {
	duration    float64
	lastTrigger float64
	cooling     bool
}

// NewCooldown creates a ready cooldown with the given duration
func NewCooldown(duration float64) Cooldown {
	return Cooldown{duration: duration}
}

// Trigger marks the cooldown inactive starting at now
func (c *Cooldown) Trigger(now float64) {
	c.cooling = true
	c.lastTrigger = now
}

// Refresh reactivates the cooldown once now-lastTrigger >= duration.
// Calling Refresh on a ready cooldown does nothing.
func (c *Cooldown) Refresh(now float64) {
	if c.cooling && now-c.lastTrigger >= c.duration {
		c.cooling = false
	}
}

// Ready reports whether the cooldown is active (not cooling down)
func (c *Cooldown) Ready() bool {
	return !c.cooling
}

// ReadyAt refreshes and reports readiness in one call
func (c *Cooldown) ReadyAt(now float64) bool {
	c.Refresh(now)
	return !c.cooling
}

// LastTrigger returns the timestamp of the most recent trigger
func (c *Cooldown) LastTrigger() float64 {
	return c.lastTrigger
}

// Duration returns the cooldown length in seconds
func (c *Cooldown) Duration() float64 {
	return c.duration
}

// Remaining returns the seconds left before the cooldown is ready again
func (c *Cooldown) Remaining(now float64) float64 {
	if !c.cooling {
		return 0
	}
	left := c.duration - (now - c.lastTrigger)
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns how far through the cooldown window now is, from 0 (just
// triggered) to 1 (ready).
func (c *Cooldown) Progress(now float64) float64 {
	if !c.cooling || c.duration <= 0 {
		return 1
	}
	p := (now - c.lastTrigger) / c.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
