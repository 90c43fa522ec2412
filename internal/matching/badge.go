package matching

import (
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

const (
	BadgeActiveNow      = "Active now"
	BadgeRecentlyActive = "Recently active"
	BadgeVerifiedCareer = "Verified career"
	BadgeRecentlyJoined = "Recently joined"
)

const (
	activeNowWindow      = 2 * time.Hour
	recentlyActiveWindow = 24 * time.Hour
)

// DeriveBadge labels a profile by how long ago it was last active, falling
// back to the education credential for stale profiles. A zero LastActive
// counts as stale.
func DeriveBadge(p *domain.Profile, now time.Time) string {
	if !p.LastActive.IsZero() {
		idle := now.Sub(p.LastActive)
		switch {
		case idle < activeNowWindow:
			return BadgeActiveNow
		case idle < recentlyActiveWindow:
			return BadgeRecentlyActive
		}
	}
	if domain.HasText(p.Education) {
		return BadgeVerifiedCareer
	}
	return BadgeRecentlyJoined
}

// Classifier derives badges against a clock.
type Classifier struct {
	now func() time.Time
}

func NewClassifier(now func() time.Time) *Classifier {
	if now == nil {
		now = time.Now
	}
	return &Classifier{now: now}
}

func (c *Classifier) Badge(p *domain.Profile) string {
	return DeriveBadge(p, c.now())
}
