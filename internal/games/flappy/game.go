// Package flappy implements beatflap: a Flappy Bird-style game whose
// obstacle spacing follows a detected rhythm instead of a fixed timer.
package flappy

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/beatflap/internal/config"
	"github.com/vovakirdan/beatflap/internal/core"
	"github.com/vovakirdan/beatflap/internal/registry"
	"github.com/vovakirdan/beatflap/internal/rhythm"
)

// configPath and difficultyPreset are set from the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// Game runs beatflap sessions. Everything a session mutates lives in
// round, which is replaced wholesale on start and restart; only the tuning,
// the RNG and the best score survive across rounds.
type Game struct {
	id     string
	title  string
	source config.PulseSource // Overrides cfg.Rhythm.Source when set

	cfg      config.FlappyConfig
	fixedCfg bool // cfg came from NewWithConfig; skip loading
	rng      *rand.Rand

	keeper core.ScoreKeeper
	best   int

	round  round
	events []core.Event
}

// round is the state of a single session.
type round struct {
	phase     core.Phase
	actor     Actor
	field     *ObstacleField
	tracker   *rhythm.Tracker
	score     int
	newBest   bool // Set when this round's end beat the previous best
	tickCount int
	now       time.Duration
	lastSpawn time.Duration
	spawned   bool         // False until the first obstacle of the round
	pending   []core.Pulse // External pulses queued for the next tick
}

// New creates a game that loads its config on Reset.
func New() *Game {
	g := &Game{
		id:    "beatflap",
		title: "Beatflap",
		cfg:   config.DefaultFlappyConfig(),
		rng:   rand.New(rand.NewSource(1)),
	}
	g.round = g.newRound(core.PhaseNotStarted)
	return g
}

// NewWithConfig creates a game with fixed tuning. Reset will not reload it.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := New()
	g.cfg = cfg
	g.fixedCfg = true
	g.round = g.newRound(core.PhaseNotStarted)
	return g
}

// newDemo creates the mode where every scored obstacle counts as a beat.
func newDemo() *Game {
	g := New()
	g.id = "beatflap_demo"
	g.title = "Beatflap (demo rhythm)"
	g.source = config.SourcePassage
	return g
}

// ID returns the unique identifier for this game mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game mode.
func (g *Game) Title() string {
	return g.title
}

// Config returns the tuning in effect.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// UseScoreKeeper attaches best-score persistence and loads the stored best.
// On a load error the in-memory best is kept and the error returned.
func (g *Game) UseScoreKeeper(k core.ScoreKeeper) error {
	g.keeper = k
	if k == nil {
		return nil
	}
	best, err := k.LoadBestScore()
	if err != nil {
		return err
	}
	g.best = max(g.best, best)
	return nil
}

// Reset reloads configuration, reseeds the RNG and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlappyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.source != "" {
		g.cfg.Rhythm.Source = g.source
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.events = g.events[:0]
	g.round = g.newRound(core.PhaseNotStarted)
}

// newRound builds a fresh session in the given phase.
func (g *Game) newRound(phase core.Phase) round {
	return round{
		phase: phase,
		actor: NewActor(g.cfg),
		field: NewObstacleField(g.cfg, g.rng),
		tracker: rhythm.NewTracker(rhythm.Settings{
			DefaultBPM:       g.cfg.Rhythm.DefaultBPM,
			MinBPM:           g.cfg.Rhythm.MinBPM,
			MaxBPM:           g.cfg.Rhythm.MaxBPM,
			BeatsPerObstacle: g.cfg.Rhythm.BeatsPerObstacle,
		}),
	}
}

// Start leaves the start screen. It reports whether the game began.
func (g *Game) Start() bool {
	if g.round.phase != core.PhaseNotStarted {
		return false
	}
	g.round = g.newRound(core.PhaseRunning)
	return true
}

// Restart begins a new session after game over. It reports whether it did.
func (g *Game) Restart() bool {
	if g.round.phase != core.PhaseOver {
		return false
	}
	g.round = g.newRound(core.PhaseRunning)
	return true
}

// Jump flaps the actor. Ignored unless a session is running.
func (g *Game) Jump() {
	if g.round.phase != core.PhaseRunning {
		return
	}
	g.round.actor.Jump()
	g.emit(core.Event{Kind: core.EventJump, At: g.round.now, Score: g.round.score})
}

// Pulse hands a detected beat to the game. The beat is queued and reaches
// the rhythm tracker at the start of the next tick; a strong beat also
// flaps immediately. Beats outside a running session are dropped.
func (g *Game) Pulse(p core.Pulse) {
	if g.round.phase != core.PhaseRunning {
		return
	}
	if g.cfg.Rhythm.Source.AcceptsExternal() {
		g.round.pending = append(g.round.pending, p)
	}
	if p.Jump {
		g.Jump()
	}
}

// Step applies the frame's input and advances the simulation to now.
func (g *Game) Step(now time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionClap) {
		g.Pulse(core.Pulse{At: now, Jump: true})
	} else if in.Has(core.ActionJump) {
		g.Jump()
	}

	if g.round.phase == core.PhaseRunning {
		g.tick(now)
	}

	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

// tick runs one Running frame. The order is fixed: later stages read what
// earlier ones wrote.
func (g *Game) tick(now time.Duration) {
	r := &g.round
	r.now = now
	r.tickCount++

	g.drainPulses()

	r.actor.ApplyGravity()
	touchedFloor := r.actor.Integrate()
	r.actor.UpdateTilt()
	if touchedFloor {
		g.end()
		return
	}

	r.field.Step(g.cfg.Physics.ScrollSpeed)

	for range r.field.CheckPassage(r.actor.X) {
		r.score++
		g.emit(core.Event{Kind: core.EventScored, At: now, Score: r.score})
		if g.cfg.Rhythm.Source.AcceptsPassage() {
			g.beat(now)
		}
	}

	if Collides(r.actor.Box(), r.field.Obstacles()) {
		g.end()
		return
	}

	if !r.spawned || ShouldSpawn(now, r.lastSpawn, r.tracker.SpawnInterval()) {
		r.field.Spawn()
		r.lastSpawn = now
		r.spawned = true
	}
}

// drainPulses feeds queued external beats to the tracker in timestamp order.
func (g *Game) drainPulses() {
	r := &g.round
	if len(r.pending) == 0 {
		return
	}
	slices.SortStableFunc(r.pending, func(a, b core.Pulse) int {
		return cmp.Compare(a.At, b.At)
	})
	for _, p := range r.pending {
		g.beat(p.At)
	}
	r.pending = r.pending[:0]
}

// beat records one pulse and reports a tempo change.
func (g *Game) beat(at time.Duration) {
	r := &g.round
	before := r.tracker.Tempo()
	if r.tracker.OnPulse(at) && r.tracker.Tempo() != before {
		g.emit(core.Event{
			Kind:          core.EventTempo,
			At:            at,
			Score:         r.score,
			Tempo:         r.tracker.Tempo(),
			SpawnInterval: r.tracker.SpawnInterval(),
		})
	}
}

// end moves a running session to Over exactly once, updating and persisting
// the best score when it was beaten.
func (g *Game) end() {
	r := &g.round
	if r.phase != core.PhaseRunning {
		return
	}
	r.phase = core.PhaseOver
	r.pending = nil

	ev := core.Event{Kind: core.EventGameOver, At: r.now, Score: r.score}
	if r.score > g.best {
		g.best = r.score
		ev.NewBest = true
		r.newBest = true
		if g.keeper != nil {
			ev.Err = g.keeper.SaveBestScore(g.best)
		}
	}
	ev.Best = g.best
	g.emit(ev)
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) drainEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := slices.Clone(g.events)
	g.events = g.events[:0]
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.phase,
		Score: g.round.score,
		Best:  g.best,
		Tempo: g.round.tracker.Tempo(),
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("beatflap", func() registry.Game {
		return New()
	})
	registry.Register("beatflap_demo", func() registry.Game {
		return newDemo()
	})
}
