package jump

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/uberjump/internal/config"
	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/progress"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60}
}

func testLevel(endY int, platforms []levels.PlatformSpec, stars []levels.StarSpec) *levels.Level {
	return &levels.Level{
		ID:        "test",
		Name:      "Test Level",
		EndY:      endY,
		Platforms: platforms,
		Stars:     stars,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// newStartedGame returns a launched game over the given level.
func newStartedGame(t *testing.T, level *levels.Level, tracker *progress.Tracker) *Game {
	t.Helper()
	g := New(level, config.DefaultJumpConfig(), tracker)
	g.Reset(testRuntime())
	g.Step(input(core.ActionStart))
	if !g.State().Started {
		t.Fatal("game did not start")
	}
	return g
}

// place moves the player without going through physics.
func place(g *Game, x, y, vy float64) {
	b := g.Player().Body
	b.Pos = core.V(x, y)
	b.Vel = core.V(0, vy)
}

type recordingPresenter struct {
	starts  int
	frames  []Frame
	results []Result
}

func (p *recordingPresenter) PresentStart()                { p.starts++ }
func (p *recordingPresenter) RenderFrame(f Frame)          { p.frames = append(p.frames, f) }
func (p *recordingPresenter) PresentEndOfSession(r Result) { p.results = append(p.results, r) }

func TestGameWaitsForStart(t *testing.T) {
	g := New(testLevel(3000, nil, nil), config.DefaultJumpConfig(), nil)
	g.Reset(testRuntime())

	for i := 0; i < 30; i++ {
		g.Step(input())
	}

	s := g.Session()
	if s.Tick != 0 {
		t.Errorf("Tick = %d before start, expected 0", s.Tick)
	}
	if pos := g.Player().Body.Pos; pos != core.V(160, 80) {
		t.Errorf("player moved before start: %+v", pos)
	}

	g.Step(input(core.ActionStart))
	if !g.State().Started {
		t.Fatal("expected game to start")
	}
	if !g.Player().Body.Dynamic {
		t.Error("player should be dynamic after start")
	}
	if g.Player().Body.Vel.Y <= 0 {
		t.Errorf("player should be rising after launch, vy = %v", g.Player().Body.Vel.Y)
	}
}

func TestPlatformBounceWhenFalling(t *testing.T) {
	level := testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 200), Type: levels.PlatformNormal},
	}, nil)
	g := newStartedGame(t, level, nil)

	place(g, 160, 219, -50)
	res := g.Step(input())

	if vy := g.Player().Body.Vel.Y; vy != 250 {
		t.Errorf("vy after landing = %v, expected 250", vy)
	}
	if res.HUDChanged {
		t.Error("platform bounce should not change the HUD")
	}
	if len(g.Objects()) != 1 {
		t.Errorf("normal platform should persist, got %d objects", len(g.Objects()))
	}
}

func TestPlatformPassThroughWhenRising(t *testing.T) {
	level := testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 200), Type: levels.PlatformBreaking},
	}, nil)
	g := newStartedGame(t, level, nil)

	place(g, 160, 219, 50)
	g.Step(input())

	if vy := g.Player().Body.Vel.Y; vy == 250 || vy > 50 {
		t.Errorf("vy = %v, rising player should pass through untouched", vy)
	}
	if len(g.Objects()) != 1 {
		t.Error("platform should not be destroyed by an upward contact")
	}
}

func TestBreakingPlatformDestroyedAfterBounce(t *testing.T) {
	level := testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 200), Type: levels.PlatformBreaking},
	}, nil)
	g := newStartedGame(t, level, nil)
	platform := g.Objects()[0]

	place(g, 160, 219, -50)
	g.Step(input())

	if vy := g.Player().Body.Vel.Y; vy != 250 {
		t.Errorf("vy after landing = %v, expected 250", vy)
	}
	if len(g.Objects()) != 0 {
		t.Errorf("breaking platform should be destroyed, %d objects remain", len(g.Objects()))
	}
	if g.world.Contains(platform.Body) {
		t.Error("destroyed platform body still in world")
	}
}

func TestSustainedOverlapReactsOnce(t *testing.T) {
	level := testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 200), Type: levels.PlatformNormal},
	}, nil)
	g := newStartedGame(t, level, nil)

	place(g, 160, 219, -50)
	g.Step(input())
	if vy := g.Player().Body.Vel.Y; vy != 250 {
		t.Fatalf("first contact vy = %v, expected 250", vy)
	}

	// Still overlapping: no second reaction.
	place(g, 160, 219, -50)
	g.Step(input())
	if vy := g.Player().Body.Vel.Y; vy >= 0 {
		t.Errorf("vy = %v, sustained overlap should not bounce again", vy)
	}
}

func TestStarContact(t *testing.T) {
	tests := []struct {
		name      string
		starType  levels.StarType
		vy        float64
		wantStars int
	}{
		{"normal star while falling", levels.StarNormal, -100, 1},
		{"normal star while rising", levels.StarNormal, 100, 1},
		{"special star", levels.StarSpecial, -20, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := testLevel(3000, nil, []levels.StarSpec{
				{Pos: core.V(160, 300), Type: tc.starType},
			})
			g := newStartedGame(t, level, nil)
			scoreBefore := g.Session().Score

			place(g, 160, 300, tc.vy)
			res := g.Step(input())

			if vy := g.Player().Body.Vel.Y; vy != 400 {
				t.Errorf("vy = %v, expected 400", vy)
			}
			if !res.HUDChanged {
				t.Error("star contact should change the HUD")
			}
			if len(g.Objects()) != 0 {
				t.Error("star should be destroyed")
			}
			if got := g.Session().Stars; got != tc.wantStars {
				t.Errorf("Stars = %d, expected %d", got, tc.wantStars)
			}
			// Score moves only with height.
			if got, want := g.Session().Score, scoreBefore+(300-80); got != want {
				t.Errorf("Score = %d, expected %d", got, want)
			}
		})
	}
}

func TestScoreTracksHeight(t *testing.T) {
	g := newStartedGame(t, testLevel(10000, nil, nil), nil)

	heights := []float64{80.9, 81.99, 150, 120, 150.5, 400, 399}
	want := []int{0, 1, 70, 70, 70, 320, 320}

	for i, y := range heights {
		place(g, 160, y, 0)
		g.Step(input())
		if got := g.Session().Score; got != want[i] {
			t.Errorf("after y=%v: Score = %d, expected %d", y, got, want[i])
		}
	}
}

func TestScoreIsMonotonicOverRun(t *testing.T) {
	level, err := levels.NewLoader(levels.Builtin()).LoadByID(levels.DefaultLevelID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	g := newStartedGame(t, level, nil)

	prev := 0
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		if i%12 == 0 {
			g.Tilt().Push([]float64{-0.3, 0, 0.3, 0}[i/12%4])
		}
		res := g.Step(input())
		s := g.Session()
		if res.State.Score < prev {
			t.Fatalf("tick %d: score decreased from %d to %d", i, prev, res.State.Score)
		}
		if s.Score != s.MaxY-80 {
			t.Fatalf("tick %d: score %d does not match climb %d", i, s.Score, s.MaxY-80)
		}
		prev = res.State.Score
	}
}

func TestPruneBoundary(t *testing.T) {
	level := testLevel(3000, nil, []levels.StarSpec{
		{Pos: core.V(10, 100)},
		{Pos: core.V(10, 99.9)},
	})
	g := newStartedGame(t, level, nil)
	kept, pruned := g.Objects()[0], g.Objects()[1]

	place(g, 160, 400, 0)
	g.Step(input())

	objs := g.Objects()
	if len(objs) != 1 || objs[0] != kept {
		t.Fatalf("expected only the star exactly 300 below to remain, got %d objects", len(objs))
	}
	if g.world.Contains(pruned.Body) {
		t.Error("pruned star still in world")
	}
}

func TestWrapX(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-21, 340},
		{341, -20},
		{-20, -20},
		{340, 340},
		{0, 0},
		{160, 160},
	}

	for _, tc := range tests {
		if got := wrapX(tc.x, 320, 20); got != tc.want {
			t.Errorf("wrapX(%v) = %v, expected %v", tc.x, got, tc.want)
		}
	}
}

func TestGameWrapsPlayer(t *testing.T) {
	g := newStartedGame(t, testLevel(3000, nil, nil), nil)

	place(g, -21, 200, 0)
	g.Step(input())
	if x := g.Player().Body.Pos.X; x != 340 {
		t.Errorf("x = %v after leaving left edge, expected 340", x)
	}

	place(g, 341, 200, 0)
	g.Step(input())
	if x := g.Player().Body.Pos.X; x != -20 {
		t.Errorf("x = %v after leaving right edge, expected -20", x)
	}
}

func TestTiltSteersPlayer(t *testing.T) {
	g := newStartedGame(t, testLevel(3000, nil, nil), nil)

	g.Tilt().Push(0.5)
	g.Step(input())

	if vx := g.Player().Body.Vel.X; vx != 150 {
		t.Errorf("vx = %v, expected 0.375*400 = 150", vx)
	}
}

func TestWinPersistsScore(t *testing.T) {
	backend := progress.NewMemoryBackend(progress.Record{HighScore: 100, Stars: 3})
	tracker := progress.Load(backend, nil)
	presenter := &recordingPresenter{}

	g := New(testLevel(3000, nil, nil), config.DefaultJumpConfig(), tracker)
	g.SetPresenter(presenter)
	g.Reset(testRuntime())
	g.Step(input(core.ActionStart))

	for y := 100.0; y <= 3000; y += 100 {
		place(g, 160, y, 0)
		g.Step(input())
		if g.State().GameOver {
			t.Fatalf("session ended early at y=%v", y)
		}
	}
	place(g, 160, 3001, 0)
	g.Step(input())

	s := g.Session()
	if !s.GameOver || s.Outcome != OutcomeWin {
		t.Fatalf("expected win, got %+v", s)
	}
	if s.Score != 2921 {
		t.Errorf("Score = %d, expected 2921", s.Score)
	}

	rec, _ := backend.LoadProgress()
	if rec.HighScore != 2921 || rec.Stars != 3 {
		t.Errorf("stored progress = %+v, expected {2921 3}", rec)
	}
	if scores := backend.Scores("test"); len(scores) != 1 || scores[0] != 2921 {
		t.Errorf("score history = %v, expected [2921]", scores)
	}

	if presenter.starts != 1 {
		t.Errorf("PresentStart called %d times, expected 1", presenter.starts)
	}
	if len(presenter.results) != 1 {
		t.Fatalf("PresentEndOfSession called %d times, expected 1", len(presenter.results))
	}
	want := Result{LevelID: "test", Score: 2921, Stars: 3, HighScore: 2921, Outcome: OutcomeWin}
	if presenter.results[0] != want {
		t.Errorf("Result = %+v, expected %+v", presenter.results[0], want)
	}
}

func TestLossKeepsHigherStoredScore(t *testing.T) {
	backend := progress.NewMemoryBackend(progress.Record{HighScore: 5000})
	g := newStartedGame(t, testLevel(3000, nil, nil), progress.Load(backend, nil))

	place(g, 160, 1000, 0)
	g.Step(input())

	// Exactly fall_limit below the max is still alive.
	place(g, 160, 200, 0)
	g.Step(input())
	if g.State().GameOver {
		t.Fatal("session ended at exactly the fall limit")
	}

	place(g, 160, 199.5, 0)
	g.Step(input())

	s := g.Session()
	if !s.GameOver || s.Outcome != OutcomeLoss {
		t.Fatalf("expected loss, got %+v", s)
	}
	if s.Score != 920 {
		t.Errorf("Score = %d, expected 920", s.Score)
	}
	if rec, _ := backend.LoadProgress(); rec.HighScore != 5000 {
		t.Errorf("stored high score = %d, expected 5000", rec.HighScore)
	}
	if g.Result().HighScore != 5000 {
		t.Errorf("Result().HighScore = %d, expected 5000", g.Result().HighScore)
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	g := newStartedGame(t, testLevel(100, nil, nil), nil)

	place(g, 160, 101, 0)
	g.Step(input())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	before := g.Frame()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionStart, core.ActionPause))
	}
	if !reflect.DeepEqual(before, g.Frame()) {
		t.Error("Step changed the world after game over")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newStartedGame(t, testLevel(3000, nil, nil), nil)

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.Session().Tick
	pos := g.Player().Body.Pos
	for i := 0; i < 10; i++ {
		g.Step(input())
	}
	if g.Session().Tick != tick || g.Player().Body.Pos != pos {
		t.Error("simulation advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestResetRestoresLevel(t *testing.T) {
	level := testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 200), Type: levels.PlatformBreaking},
	}, []levels.StarSpec{
		{Pos: core.V(50, 600)},
	})
	g := newStartedGame(t, level, nil)

	place(g, 160, 219, -50)
	g.Step(input())
	if len(g.Objects()) != 1 {
		t.Fatalf("expected breaking platform gone, got %d objects", len(g.Objects()))
	}

	g.Reset(testRuntime())
	if len(g.Objects()) != 2 {
		t.Errorf("Reset left %d objects, expected 2", len(g.Objects()))
	}
	if g.State().Started || g.Session().Score != 0 {
		t.Errorf("Reset did not clear the session: %+v", g.State())
	}
}

func TestGameDeterminism(t *testing.T) {
	level, err := levels.NewLoader(levels.Builtin()).LoadByID(levels.DefaultLevelID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	run := func() []Frame {
		p := &recordingPresenter{}
		g := New(level, config.DefaultJumpConfig(), nil)
		g.SetPresenter(p)
		g.Reset(testRuntime())
		for i := 0; i < 1200; i++ {
			if i%12 == 0 {
				g.Tilt().Push(float64(i%5-2) / 4)
			}
			in := core.NewInputFrame()
			if i == 3 {
				in.Set(core.ActionStart)
			}
			g.Step(in)
		}
		return p.frames
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("frame counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Fatalf("frames diverge at %d:\n%+v\n%+v", i, first[i], second[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := New(testLevel(3000, []levels.PlatformSpec{
		{Pos: core.V(160, 60)},
	}, nil), config.DefaultJumpConfig(), nil)
	g.Reset(testRuntime())

	screen := core.NewScreen(40, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Press SPACE to launch") {
		t.Error("start prompt missing before launch")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.ContainsRune(out, PlatformChar) {
		t.Error("platform not drawn")
	}

	g.Step(input(core.ActionStart))
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player not drawn")
	}
}
