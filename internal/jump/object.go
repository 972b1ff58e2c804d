// Package jump implements the UberJump session: a player launched upward
// through a level of stars and platforms, bouncing off whatever it lands on,
// scoring by the height it reaches.
//
// The package owns the gameplay rules. Physics integration and contact
// detection live in the physics package; durable progress in progress;
// level data in levels.
package jump

import (
	"github.com/vovakirdan/uberjump/internal/config"
	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/physics"
)

// Kind is the closed set of game object kinds.
type Kind int

const (
	KindPlayer Kind = iota
	KindStar
	KindPlatform
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindStar:
		return "star"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Category returns the physics category bodies of this kind are created with.
func (k Kind) Category() physics.Category {
	switch k {
	case KindStar:
		return physics.CategoryStar
	case KindPlatform:
		return physics.CategoryPlatform
	default:
		return physics.CategoryPlayer
	}
}

// Subtypes are shared with level data.
type (
	PlatformType = levels.PlatformType
	StarType     = levels.StarType
)

// Object is one entity in the session: the player, a star or a platform.
// Every object owns exactly one body.
type Object struct {
	ID       uint64
	Kind     Kind
	Platform PlatformType // Meaningful for KindPlatform only
	Star     StarType     // Meaningful for KindStar only
	Body     *physics.Body
}

// Pos returns the object's world position.
func (o *Object) Pos() core.Vec2 {
	return o.Body.Pos
}

// Reaction is the outcome of an object reacting to the player touching it.
type Reaction struct {
	Destroy    bool // Remove the object from the session
	HUDChanged bool // A value shown on the HUD changed
	Stars      int  // Stars to add to the session
}

// ReactToPlayerContact applies this object's effect on the player and
// reports what the session should do with the object.
func (o *Object) ReactToPlayerContact(player *physics.Body, cfg *config.JumpConfig) Reaction {
	switch o.Kind {
	case KindStar:
		player.Vel.Y = cfg.Physics.StarBoost
		stars := cfg.Rules.StarValue
		if o.Star == levels.StarSpecial {
			stars = cfg.Rules.SpecialStarValue
		}
		return Reaction{Destroy: true, HUDChanged: true, Stars: stars}

	case KindPlatform:
		// Only a falling player bounces; rising through is a pass-through.
		if player.Vel.Y >= 0 {
			return Reaction{}
		}
		player.Vel.Y = cfg.Physics.PlatformBounce
		return Reaction{Destroy: o.Platform == levels.PlatformBreaking}
	}
	return Reaction{}
}

func newPlayer(id uint64, pos core.Vec2, cfg *config.JumpConfig) *Object {
	body := physics.NewBody(physics.CategoryPlayer, physics.Circle(cfg.Bodies.PlayerRadius), pos)
	body.ContactMask = physics.CategoryStar | physics.CategoryPlatform
	body.Owner = id
	return &Object{ID: id, Kind: KindPlayer, Body: body}
}

func newStar(id uint64, spec levels.StarSpec, cfg *config.JumpConfig) *Object {
	body := physics.NewBody(physics.CategoryStar, physics.Circle(cfg.Bodies.StarRadius), spec.Pos)
	body.Owner = id
	return &Object{ID: id, Kind: KindStar, Star: spec.Type, Body: body}
}

func newPlatform(id uint64, spec levels.PlatformSpec, cfg *config.JumpConfig) *Object {
	body := physics.NewBody(physics.CategoryPlatform,
		physics.Box(cfg.Bodies.PlatformHalfW, cfg.Bodies.PlatformHalfH), spec.Pos)
	body.Owner = id
	return &Object{ID: id, Kind: KindPlatform, Platform: spec.Type, Body: body}
}
