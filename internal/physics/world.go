package physics

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/uberjump/internal/core"
)

// Contact is a newly established overlap between a body that tests for
// contacts (A) and a body of a category it tests against (B).
type Contact struct {
	A, B *Body
}

// Other returns the body of the contact that is not b.
func (c Contact) Other(b *Body) *Body {
	if c.A == b {
		return c.B
	}
	return c.A
}

type handlerKey struct {
	a, b Category
}

// World wraps a Chipmunk space. Body state lives on Body and is copied into
// the space before each step and back out after it.
type World struct {
	gravity  core.Vec2
	space    *cp.Space
	bodies   []*Body
	handlers map[handlerKey]struct{}
	pending  []Contact
	nextID   BodyID
}

// NewWorld creates an empty world with a constant gravity acceleration.
func NewWorld(gravity core.Vec2) *World {
	space := cp.NewSpace()
	space.SetGravity(toVector(gravity))

	return &World{
		gravity:  gravity,
		space:    space,
		bodies:   make([]*Body, 0, 64),
		handlers: make(map[handlerKey]struct{}),
	}
}

// Gravity returns the world's gravity acceleration.
func (w *World) Gravity() core.Vec2 {
	return w.gravity
}

// Add inserts a body into the world and assigns its ID.
// Adding a body that is already present is a no-op.
func (w *World) Add(b *Body) {
	if w.Contains(b) {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.attach()

	w.space.AddBody(b.cpBody)
	w.space.AddShape(b.cpShape)
	w.bodies = append(w.bodies, b)

	for c := CategoryPlayer; c <= CategoryPlatform; c <<= 1 {
		if b.Tests(c) {
			w.handle(b.category, c)
		}
	}
}

// handle installs the begin handler for one tester/target category pair.
func (w *World) handle(a, b Category) {
	key := handlerKey{a: a, b: b}
	if _, ok := w.handlers[key]; ok {
		return
	}
	w.handlers[key] = struct{}{}

	h := w.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
	h.BeginFunc = w.begin
}

// begin records a contact when two shapes start touching. cp keeps the
// arbiter while they stay in contact, so a sustained overlap does not call
// it again.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, okA := sa.UserData.(*Body)
	b, okB := sb.UserData.(*Body)
	if !okA || !okB {
		return true
	}
	if !a.Tests(b.category) {
		a, b = b, a
	}
	if a.Tests(b.category) {
		w.pending = append(w.pending, Contact{A: a, B: b})
	}
	return true
}

// Remove takes a body out of the world. It produces no further contacts.
// While the space is stepping, the Chipmunk removal runs as a post-step
// callback.
func (w *World) Remove(b *Body) {
	if !w.Contains(b) {
		return
	}
	for i, other := range w.bodies {
		if other != b {
			continue
		}
		copy(w.bodies[i:], w.bodies[i+1:])
		w.bodies[len(w.bodies)-1] = nil
		w.bodies = w.bodies[:len(w.bodies)-1]
		break
	}

	if w.space.IsLocked() {
		w.space.AddPostStepCallback(func(space *cp.Space, _, data interface{}) {
			detach(space, data.(*Body))
		}, b, b)
		return
	}
	detach(w.space, b)
}

func detach(space *cp.Space, b *Body) {
	space.RemoveShape(b.cpShape)
	space.RemoveBody(b.cpBody)
}

// Contains reports whether b is currently in the world.
func (w *World) Contains(b *Body) bool {
	if b == nil || b.id == 0 {
		return false
	}
	for _, other := range w.bodies {
		if other == b {
			return true
		}
	}
	return false
}

// Bodies returns the active bodies in insertion order.
// The slice must not be modified by the caller.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of active bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances dynamic bodies by dt seconds and returns the contacts that
// began during this step, ordered by the tester's and then the target's
// insertion order.
//
// Chipmunk moves each dynamic body by its current velocity, detects
// contacts, then applies gravity to the velocity.
func (w *World) Step(dt float64) []Contact {
	w.pending = w.pending[:0]

	for _, b := range w.bodies {
		w.push(b)
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		if b.Dynamic {
			b.Pos = fromVector(b.cpBody.Position())
			b.Vel = fromVector(b.cpBody.Velocity())
		}
	}

	if len(w.pending) == 0 {
		return nil
	}
	contacts := make([]Contact, len(w.pending))
	copy(contacts, w.pending)
	sort.SliceStable(contacts, func(i, j int) bool {
		if contacts[i].A.id != contacts[j].A.id {
			return contacts[i].A.id < contacts[j].A.id
		}
		return contacts[i].B.id < contacts[j].B.id
	})
	return contacts
}

// push copies the caller-visible state of b into its Chipmunk body. A body
// that is not Dynamic is held in place with zero velocity.
func (w *World) push(b *Body) {
	pos := toVector(b.Pos)
	if b.fixed {
		if b.cpBody.Position() != pos {
			b.cpBody.SetPosition(pos)
			w.space.ReindexShapesForBody(b.cpBody)
		}
		return
	}

	b.cpBody.SetPosition(pos)
	if b.Dynamic {
		b.cpBody.SetVelocity(b.Vel.X, b.Vel.Y)
	} else {
		b.cpBody.SetVelocity(0, 0)
	}
}
