package testutil

import (
	"time"

	"github.com/light-bringer/bom-service/internal/pkg/clock"
)

// FixtureTime is the reference instant every frozen test clock starts at.
// Pinning one instant keeps domain timestamps deterministic across suites.
var FixtureTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// FrozenClock returns a mock clock pinned at FixtureTime. Tests that need to
// observe timestamp movement call Advance on the returned clock.
func FrozenClock() *clock.MockClock {
	return clock.NewMockClock(FixtureTime)
}
