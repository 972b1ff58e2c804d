package jump

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uberjump/internal/config"
	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/physics"
	"github.com/vovakirdan/uberjump/internal/progress"
)

// Game runs sessions of one level.
type Game struct {
	level     *levels.Level
	cfg       config.JumpConfig
	tracker   *progress.Tracker
	presenter Presenter
	logger    *log.Logger
	tilt      *TiltFilter
	camera    ScrollCamera

	runtime core.RuntimeConfig
	world   *physics.World
	player  *Object
	objects []*Object          // Live stars and platforms, in creation order
	byID    map[uint64]*Object // Live stars and platforms by body owner
	nextID  uint64

	session Session
	offsets CameraOffsets
	started bool
	paused  bool
	result  Result
}

// New creates a game for a level. A nil tracker keeps progress in memory
// for the lifetime of the game. Call Reset before the first Step.
func New(level *levels.Level, cfg config.JumpConfig, tracker *progress.Tracker) *Game {
	if tracker == nil {
		tracker = progress.Load(nil, nil)
	}
	return &Game{
		level:     level,
		cfg:       cfg,
		tracker:   tracker,
		presenter: NopPresenter{},
		logger:    log.New(io.Discard),
		tilt:      NewTiltFilter(cfg.Physics.TiltSmoothing),
		camera:    NewScrollCamera(cfg.Rules),
	}
}

// SetPresenter replaces the presenter. Nil restores NopPresenter.
func (g *Game) SetPresenter(p Presenter) {
	if p == nil {
		p = NopPresenter{}
	}
	g.presenter = p
}

// SetLogger replaces the logger. Nil discards log output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the level being played.
func (g *Game) Level() *levels.Level {
	return g.level
}

// Tilt returns the filter fed by the input source.
func (g *Game) Tilt() *TiltFilter {
	return g.tilt
}

// Reset builds a fresh session: player on the launch pad, every level
// object in place, tilt cleared.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.world = physics.NewWorld(core.V(0, g.cfg.Physics.Gravity))
	g.objects = g.objects[:0]
	g.byID = make(map[uint64]*Object, g.level.ObjectCount())
	g.nextID = 0
	g.started = false
	g.paused = false
	g.result = Result{}

	g.player = newPlayer(g.newID(), core.V(g.cfg.World.Width/2, g.cfg.World.SpawnY), &g.cfg)
	g.world.Add(g.player.Body)

	for _, spec := range g.level.Platforms {
		g.addObject(newPlatform(g.newID(), spec, &g.cfg))
	}
	for _, spec := range g.level.Stars {
		g.addObject(newStar(g.newID(), spec, &g.cfg))
	}

	g.session = newSession(g.cfg.World.SpawnY, g.tracker.Stars())
	g.offsets = g.camera.Offsets(g.player.Body.Pos.Y)
	g.tilt.Reset()

	g.presenter.PresentStart()
}

func (g *Game) newID() uint64 {
	g.nextID++
	return g.nextID
}

func (g *Game) addObject(o *Object) {
	g.world.Add(o.Body)
	g.objects = append(g.objects, o)
	g.byID[o.ID] = o
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.started {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.started {
		if !in.Has(core.ActionStart) {
			g.presenter.RenderFrame(g.Frame())
			return core.StepResult{State: g.State()}
		}
		g.launch()
	}

	g.session.Tick++

	g.update()
	if g.session.GameOver {
		g.presenter.RenderFrame(g.Frame())
		return core.StepResult{State: g.State()}
	}

	hud := false
	for _, c := range g.world.Step(g.runtime.TickSeconds()) {
		if g.HandleContact(c) {
			hud = true
		}
	}

	g.afterPhysics()
	g.presenter.RenderFrame(g.Frame())

	return core.StepResult{State: g.State(), HUDChanged: hud}
}

// launch leaves the launch pad.
func (g *Game) launch() {
	g.started = true
	g.player.Body.Dynamic = true
	g.player.Body.Vel.Y = g.cfg.Physics.LaunchSpeed
	g.logger.Info("session started", "level", g.level.ID, "stars", g.session.Stars)
}

// update runs the per-frame rules that precede physics: scoring, pruning,
// camera and end conditions.
func (g *Game) update() {
	y := g.player.Body.Pos.Y

	g.session.RecordHeight(y)
	g.prune(y)
	g.offsets = g.camera.Offsets(y)

	if y > float64(g.level.EndY) {
		g.endSession(OutcomeWin)
		return
	}
	if y < float64(g.session.MaxY)-g.cfg.Rules.FallLimit {
		g.endSession(OutcomeLoss)
	}
}

// prune destroys every object far enough below the player.
func (g *Game) prune(playerY float64) {
	kept := g.objects[:0]
	for _, o := range g.objects {
		if playerY > o.Body.Pos.Y+g.cfg.Rules.PruneDistance {
			g.world.Remove(o.Body)
			delete(g.byID, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(g.objects); i++ {
		g.objects[i] = nil
	}
	g.objects = kept
}

// HandleContact routes a contact to the non-player object and applies its
// reaction. It reports whether the HUD changed.
func (g *Game) HandleContact(c physics.Contact) bool {
	if c.A != g.player.Body && c.B != g.player.Body {
		return false
	}
	other := c.Other(g.player.Body)
	if !g.world.Contains(other) {
		return false
	}
	obj, ok := g.byID[other.Owner]
	if !ok {
		return false
	}

	r := obj.ReactToPlayerContact(g.player.Body, &g.cfg)
	g.session.Stars += r.Stars
	if r.Destroy {
		g.destroy(obj)
	}
	return r.HUDChanged
}

func (g *Game) destroy(o *Object) {
	g.world.Remove(o.Body)
	delete(g.byID, o.ID)
	for i, other := range g.objects {
		if other == o {
			g.objects = append(g.objects[:i], g.objects[i+1:]...)
			break
		}
	}
}

// afterPhysics applies tilt steering and horizontal wrap-around.
func (g *Game) afterPhysics() {
	b := g.player.Body
	b.Vel.X = g.tilt.Value() * g.cfg.Physics.TiltScale
	b.Pos.X = wrapX(b.Pos.X, g.cfg.World.Width, g.cfg.World.WrapMargin)
}

// wrapX moves a position that left the playfield by more than margin to
// just past the opposite edge.
func wrapX(x, width, margin float64) float64 {
	switch {
	case x < -margin:
		return width + margin
	case x > width+margin:
		return -margin
	}
	return x
}

// endSession finishes the run and persists progress.
func (g *Game) endSession(outcome Outcome) {
	g.session.GameOver = true
	g.session.Outcome = outcome

	rec := g.tracker.Commit(g.session.Score, g.session.Stars)
	g.tracker.RecordScore(g.level.ID, g.session.Score)

	g.result = Result{
		LevelID:   g.level.ID,
		Score:     g.session.Score,
		Stars:     g.session.Stars,
		HighScore: rec.HighScore,
		Outcome:   outcome,
	}

	g.logger.Info("session ended",
		"level", g.level.ID,
		"outcome", outcome,
		"score", g.session.Score,
		"high_score", rec.HighScore,
		"stars", g.session.Stars,
		"ticks", g.session.Tick,
	)
	g.presenter.PresentEndOfSession(g.result)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Stars:    g.session.Stars,
		Started:  g.started,
		GameOver: g.session.GameOver,
		Paused:   g.paused,
	}
}

// Session returns a copy of the session state.
func (g *Game) Session() Session {
	return g.session
}

// Result returns the summary of the last finished session.
func (g *Game) Result() Result {
	return g.result
}

// Player returns the player object.
func (g *Game) Player() *Object {
	return g.player
}

// Objects returns the live stars and platforms. The slice must not be modified.
func (g *Game) Objects() []*Object {
	return g.objects
}

// Frame returns a snapshot of the world.
func (g *Game) Frame() Frame {
	views := make([]ObjectView, len(g.objects))
	for i, o := range g.objects {
		views[i] = ObjectView{
			ID:       o.ID,
			Kind:     o.Kind,
			Pos:      o.Body.Pos,
			Platform: o.Platform,
			Star:     o.Star,
		}
	}
	high := g.tracker.HighScore()
	if g.session.Score > high {
		high = g.session.Score
	}
	return Frame{
		Tick:      g.session.Tick,
		Player:    g.player.Body.Pos,
		PlayerVel: g.player.Body.Vel,
		Objects:   views,
		Camera:    g.offsets,
		Score:     g.session.Score,
		Stars:     g.session.Stars,
		HighScore: high,
		MaxY:      g.session.MaxY,
		EndY:      g.level.EndY,
		Started:   g.started,
		Paused:    g.paused,
		GameOver:  g.session.GameOver,
		Outcome:   g.session.Outcome,
	}
}
