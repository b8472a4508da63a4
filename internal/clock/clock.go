// Package clock provides one-shot deferred triggers that run on the game
// loop instead of on timer goroutines.
package clock

import "time"

// Deferrer schedules fn to run once after d has elapsed.
//
// Implementations must run fn on the game loop, never concurrently with
// other game code. Callbacks scheduled with increasing delays from the same
// call site fire in that order.
type Deferrer interface {
	AfterFunc(d time.Duration, fn func())
}
