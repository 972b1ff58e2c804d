// Package physics implements the small contact-only physics world used by the
// game on top of Chipmunk2D (jakecoffman/cp). Every shape is a sensor, so
// bodies never push each other; contacts are reported and the caller decides
// how velocities change.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/uberjump/internal/core"
)

// Category is a collision category bit flag.
type Category uint32

// Collision categories. The bit index matches the closed enumeration
// {Player=0, Star=1, Platform=2}.
const (
	CategoryPlayer   Category = 1 << 0
	CategoryStar     Category = 1 << 1
	CategoryPlatform Category = 1 << 2
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryStar:
		return "star"
	case CategoryPlatform:
		return "platform"
	default:
		return "mixed"
	}
}

// ShapeKind selects the geometry of a Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is either a circle (Radius) or an axis-aligned box (HalfW, HalfH),
// centered on the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	HalfW  float64
	HalfH  float64
}

// Circle returns a circle shape.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned box shape with the given half extents.
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: halfW, HalfH: halfH}
}

// BodyID identifies a body inside a World.
type BodyID uint64

// Body is the physical state backing one game object.
type Body struct {
	id       BodyID
	category Category

	Pos     core.Vec2
	Vel     core.Vec2
	Shape   Shape
	Dynamic bool // Integrated by World.Step when true

	// ContactMask lists the categories this body reports contacts against.
	ContactMask Category

	// Owner is an opaque handle the game uses to map a body back to its object.
	Owner uint64

	cpBody  *cp.Body
	cpShape *cp.Shape
	fixed   bool // Backed by a static Chipmunk body
}

// NewBody creates a body. The category is fixed for the body's lifetime.
func NewBody(category Category, shape Shape, pos core.Vec2) *Body {
	return &Body{
		category: category,
		Shape:    shape,
		Pos:      pos,
	}
}

// ID returns the identifier assigned when the body was added to a world.
// Zero means the body has never been added.
func (b *Body) ID() BodyID {
	return b.id
}

// Category returns the body's collision category.
func (b *Body) Category() Category {
	return b.category
}

// Tests reports whether b wants contacts with bodies of category c.
func (b *Body) Tests(c Category) bool {
	return b.ContactMask&c != 0
}

// moves reports whether the body gets a dynamic Chipmunk body when added.
// Bodies that test for contacts must be dynamic: cp never collides two
// static bodies.
func (b *Body) moves() bool {
	return b.Dynamic || b.ContactMask != 0
}

// attach builds the Chipmunk body and sensor shape mirroring b.
func (b *Body) attach() {
	b.fixed = !b.moves()
	if b.fixed {
		b.cpBody = cp.NewStaticBody()
	} else {
		b.cpBody = cp.NewBody(1, math.Inf(1)) // never rotates
	}
	b.cpBody.SetPosition(toVector(b.Pos))
	b.cpBody.UserData = b

	switch b.Shape.Kind {
	case ShapeCircle:
		b.cpShape = cp.NewCircle(b.cpBody, b.Shape.Radius, cp.Vector{})
	default:
		b.cpShape = cp.NewBox(b.cpBody, 2*b.Shape.HalfW, 2*b.Shape.HalfH, 0)
	}
	b.cpShape.SetSensor(true)
	b.cpShape.SetCollisionType(cp.CollisionType(b.category))
	b.cpShape.SetFilter(b.filter())
	b.cpShape.UserData = b
}

// filter maps the category and contact mask onto a cp shape filter. Bodies
// without a mask accept every category and leave the choice to the tester.
func (b *Body) filter() cp.ShapeFilter {
	mask := ^uint(0)
	if b.ContactMask != 0 {
		mask = uint(b.ContactMask)
	}
	return cp.ShapeFilter{Categories: uint(b.category), Mask: mask}
}

func toVector(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) core.Vec2 {
	return core.V(v.X, v.Y)
}
