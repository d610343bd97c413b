package service

import (
	"context"
	"math/rand"
	"time"
)

// Sleeper models the elapsed time between lifecycle transitions. It blocks
// the calling worker for a whole number of seconds drawn uniformly from
// [minSec, maxSec], returning early if the context is cancelled.
type Sleeper interface {
	Sleep(ctx context.Context, minSec, maxSec int)
}

type randomSleeper struct{}

func NewRandomSleeper() Sleeper {
	return randomSleeper{}
}

func (randomSleeper) Sleep(ctx context.Context, minSec, maxSec int) {
	if maxSec < minSec {
		maxSec = minSec
	}
	d := time.Duration(minSec+rand.Intn(maxSec-minSec+1)) * time.Second

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
