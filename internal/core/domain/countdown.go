package domain

const (
	// RewardCredits is paid to the viewer for each claimed view and taken
	// from the campaign budget.
	RewardCredits int64 = 5
	// WatchSeconds is how long an ad must be watched before claiming.
	WatchSeconds = 30
	// InterstitialCadence shows the sponsor message every N claimed views.
	InterstitialCadence int64 = 30
)

// Countdown gates the claim for one displayed ad. It starts at WatchSeconds
// and becomes claimable at zero. The zero value is claimable; use
// NewCountdown for a fresh ad.
type Countdown struct {
	remaining int
}

// NewCountdown returns a countdown in the Watching state.
func NewCountdown() Countdown {
	return Countdown{remaining: WatchSeconds}
}

// Tick records one elapsed second. It reports whether this tick made the
// countdown claimable. Ticks after that are no-ops.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Remaining returns the seconds left to watch.
func (c Countdown) Remaining() int {
	return c.remaining
}

// Claimable reports whether the watch period is over.
func (c Countdown) Claimable() bool {
	return c.remaining <= 0
}

// CanSwitch reports whether a different ad may be loaded: either nothing
// has been watched yet or the watch period is complete.
func (c Countdown) CanSwitch() bool {
	return c.remaining <= 0 || c.remaining >= WatchSeconds
}

// ShowsInterstitial reports whether the view total lands on the sponsor
// cadence.
func ShowsInterstitial(viewsTotal int64) bool {
	return viewsTotal > 0 && viewsTotal%InterstitialCadence == 0
}
