package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/uberjump/internal/core"
)

func newPlayer(pos core.Vec2) *Body {
	b := NewBody(CategoryPlayer, Circle(10), pos)
	b.Dynamic = true
	b.ContactMask = CategoryStar | CategoryPlatform
	return b
}

// stepOnce steps a fresh world holding both bodies once, without gravity.
func stepOnce(tester, target *Body) []Contact {
	w := NewWorld(core.Vec2{})
	w.Add(tester)
	w.Add(target)
	return w.Step(1.0 / 60.0)
}

func TestWorldDetectsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		tester   *Body
		target   *Body
		expected bool
	}{
		{
			name:     "circles overlapping",
			tester:   newPlayer(core.V(0, 0)),
			target:   NewBody(CategoryStar, Circle(10), core.V(15, 0)),
			expected: true,
		},
		{
			name:     "circles apart",
			tester:   newPlayer(core.V(0, 0)),
			target:   NewBody(CategoryStar, Circle(10), core.V(25, 0)),
			expected: false,
		},
		{
			name:     "circle resting on box",
			tester:   newPlayer(core.V(0, 15)),
			target:   NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0)),
			expected: true,
		},
		{
			name:     "circle near box corner outside",
			tester:   newPlayer(core.V(38, 14)),
			target:   NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0)),
			expected: false,
		},
		{
			name:     "circle center inside box",
			tester:   newPlayer(core.V(5, 1)),
			target:   NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0)),
			expected: true,
		},
		{
			name:     "circle above box",
			tester:   newPlayer(core.V(0, 40)),
			target:   NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0)),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contacts := stepOnce(tc.tester, tc.target)
			if got := len(contacts) == 1; got != tc.expected {
				t.Errorf("contact reported = %v (%d contacts), expected %v", got, len(contacts), tc.expected)
			}
		})
	}
}

func TestWorldGravityIntegration(t *testing.T) {
	w := NewWorld(core.V(0, -300))
	p := newPlayer(core.V(100, 100))
	p.Vel = core.V(0, 250)
	w.Add(p)

	static := NewBody(CategoryPlatform, Box(30, 6), core.V(500, 500))
	w.Add(static)

	dt := 1.0 / 60.0
	w.Step(dt)

	// The position moves with the velocity held at the start of the step;
	// gravity is applied to the velocity afterwards.
	wantY := 100 + 250*dt
	if math.Abs(p.Pos.Y-wantY) > 1e-9 {
		t.Errorf("Pos.Y = %f, expected %f", p.Pos.Y, wantY)
	}
	wantVY := 250 - 300*dt
	if math.Abs(p.Vel.Y-wantVY) > 1e-9 {
		t.Errorf("Vel.Y = %f, expected %f", p.Vel.Y, wantVY)
	}
	if p.Pos.X != 100 {
		t.Errorf("Pos.X = %f, expected 100", p.Pos.X)
	}
	if static.Pos != core.V(500, 500) || static.Vel != (core.Vec2{}) {
		t.Error("static body should not be integrated")
	}
}

func TestWorldReportsContactOncePerOverlap(t *testing.T) {
	w := NewWorld(core.Vec2{})
	p := newPlayer(core.V(0, 0))
	w.Add(p)
	star := NewBody(CategoryStar, Circle(10), core.V(5, 0))
	w.Add(star)

	contacts := w.Step(1.0 / 60.0)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact on new overlap, got %d", len(contacts))
	}
	if contacts[0].A != p || contacts[0].Other(p) != star {
		t.Error("contact should pair the player with the star")
	}

	// Sustained overlap reports nothing further
	for i := 0; i < 5; i++ {
		if got := w.Step(1.0 / 60.0); len(got) != 0 {
			t.Fatalf("sustained overlap reported %d contacts on step %d", len(got), i)
		}
	}

	// Separate, then overlap again
	p.Pos = core.V(100, 0)
	w.Step(1.0 / 60.0)
	p.Pos = core.V(0, 0)
	if got := w.Step(1.0 / 60.0); len(got) != 1 {
		t.Errorf("re-established overlap should report 1 contact, got %d", len(got))
	}
}

func TestWorldCategoryFiltering(t *testing.T) {
	w := NewWorld(core.Vec2{})

	// Star and platform overlap each other but never test against each other
	star := NewBody(CategoryStar, Circle(10), core.V(0, 0))
	platform := NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0))
	w.Add(star)
	w.Add(platform)

	if got := w.Step(1.0 / 60.0); len(got) != 0 {
		t.Errorf("star/platform overlap should not be reported, got %d contacts", len(got))
	}

	// Two players never report contacts with each other
	p1 := newPlayer(core.V(200, 0))
	p2 := newPlayer(core.V(205, 0))
	p1.Dynamic, p2.Dynamic = false, false
	w.Add(p1)
	w.Add(p2)

	if got := w.Step(1.0 / 60.0); len(got) != 0 {
		t.Errorf("player/player overlap should not be reported, got %d contacts", len(got))
	}
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld(core.Vec2{})
	p := newPlayer(core.V(0, 0))
	star := NewBody(CategoryStar, Circle(10), core.V(0, 0))
	w.Add(p)
	w.Add(star)

	if !w.Contains(star) {
		t.Fatal("star should be in world after Add")
	}
	w.Step(1.0 / 60.0)

	w.Remove(star)
	if w.Contains(star) {
		t.Error("star should not be in world after Remove")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
	if got := w.Step(1.0 / 60.0); len(got) != 0 {
		t.Errorf("removed body produced %d contacts", len(got))
	}
}

func TestBodyCategoryIsFixed(t *testing.T) {
	b := NewBody(CategoryStar, Circle(5), core.Vec2{})
	if b.Category() != CategoryStar {
		t.Errorf("Category() = %v, expected star", b.Category())
	}
	if b.ID() != 0 {
		t.Error("ID() should be zero before Add")
	}

	w := NewWorld(core.Vec2{})
	w.Add(b)
	w.Add(b)
	if w.Len() != 1 {
		t.Errorf("adding the same body twice should be a no-op, Len() = %d", w.Len())
	}
}

func TestWorldContactsInInsertionOrder(t *testing.T) {
	w := NewWorld(core.Vec2{})
	p := newPlayer(core.V(0, 0))
	w.Add(p)

	var targets []*Body
	for i := 0; i < 4; i++ {
		star := NewBody(CategoryStar, Circle(10), core.V(float64(i*4), 0))
		targets = append(targets, star)
		w.Add(star)
	}
	platform := NewBody(CategoryPlatform, Box(30, 6), core.V(0, 0))
	targets = append(targets, platform)
	w.Add(platform)

	contacts := w.Step(1.0 / 60.0)
	if len(contacts) != len(targets) {
		t.Fatalf("got %d contacts, expected %d", len(contacts), len(targets))
	}
	for i, c := range contacts {
		if c.A != p || c.B != targets[i] {
			t.Errorf("contact %d pairs ids %d/%d, expected %d/%d", i, c.A.ID(), c.B.ID(), p.ID(), targets[i].ID())
		}
	}
}

func TestWorldHoldsNonDynamicTester(t *testing.T) {
	w := NewWorld(core.V(0, -300))
	p := newPlayer(core.V(50, 80))
	p.Dynamic = false
	p.Vel = core.V(0, 120)
	w.Add(p)

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60.0)
	}
	if p.Pos != core.V(50, 80) || p.Vel != core.V(0, 120) {
		t.Errorf("non-dynamic body moved: pos %+v vel %+v", p.Pos, p.Vel)
	}

	// Once dynamic it integrates, and contacts work without re-adding.
	p.Dynamic = true
	star := NewBody(CategoryStar, Circle(10), core.V(50, 84))
	w.Add(star)
	contacts := w.Step(1.0 / 60.0)
	if p.Pos.Y <= 80 {
		t.Errorf("dynamic body did not rise: y = %f", p.Pos.Y)
	}
	if len(contacts) != 1 || contacts[0].B != star {
		t.Errorf("expected one contact with the star, got %d", len(contacts))
	}
}

func TestWorldReaddAfterRemove(t *testing.T) {
	w := NewWorld(core.Vec2{})
	p := newPlayer(core.V(0, 0))
	star := NewBody(CategoryStar, Circle(10), core.V(0, 0))
	w.Add(p)
	w.Add(star)
	w.Step(1.0 / 60.0)

	w.Remove(star)
	w.Remove(star)
	w.Add(star)
	if got := w.Step(1.0 / 60.0); len(got) != 1 {
		t.Errorf("re-added body should start a new contact, got %d", len(got))
	}
}
