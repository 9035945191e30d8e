package flappy

import (
	"time"

	"github.com/vovakirdan/beatflap/internal/config"
	"github.com/vovakirdan/beatflap/internal/core"
)

const frame = 10 * time.Millisecond

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

// newTestGame returns a game with the reference tuning, already reset.
func newTestGame(mutate func(*config.FlappyConfig)) *Game {
	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	return g
}

func noGravity(c *config.FlappyConfig) {
	c.Physics.Gravity = 0
}

func nothing() core.InputFrame {
	return core.NewInputFrame()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// memKeeper is an in-memory ScoreKeeper.
type memKeeper struct {
	best    int
	saves   []int
	loadErr error
	saveErr error
}

func (k *memKeeper) LoadBestScore() (int, error) {
	if k.loadErr != nil {
		return 0, k.loadErr
	}
	return k.best, nil
}

func (k *memKeeper) SaveBestScore(score int) error {
	k.saves = append(k.saves, score)
	if k.saveErr != nil {
		return k.saveErr
	}
	k.best = score
	return nil
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
