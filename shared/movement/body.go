package movement

import (
	"math"

	"github.com/automoto/gggames/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Body moves one character through an Arena. It satisfies
// action.MovementProvider. Input added with AddMovementInput is consumed by
// the next Step.
type Body struct {
	arena  *Arena
	object *resolv.Object
	params Params

	vel      gamemath.Vec2
	input    gamemath.Vec2
	onGround bool
}

// NewBody adds a character box to the arena with its bottom-center at pos.
func NewBody(arena *Arena, params Params, pos gamemath.Vec2) *Body {
	obj := resolv.NewObject(pos.X-params.Width/2, pos.Y-params.Height, params.Width, params.Height, tagCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, params.Width, params.Height))
	arena.Space.Add(obj)

	return &Body{
		arena:  arena,
		object: obj,
		params: params,
	}
}

// Remove takes the body out of its arena.
func (b *Body) Remove() {
	b.arena.Space.Remove(b.object)
}

func (b *Body) Velocity() gamemath.Vec2 {
	return b.vel
}

func (b *Body) SetVelocity(v gamemath.Vec2) {
	b.vel = v
}

func (b *Body) AddMovementInput(dir gamemath.Vec2, scale float64) {
	b.input = b.input.Add(dir.Scale(scale))
}

// Position is the bottom-center of the collision box.
func (b *Body) Position() gamemath.Vec2 {
	return gamemath.Vec2{X: b.object.X + b.params.Width/2, Y: b.object.Y + b.params.Height}
}

func (b *Body) OnGround() bool {
	return b.onGround
}

func (b *Body) Params() Params {
	return b.params
}

// SetParams takes effect on the next Step.
func (b *Body) SetParams(p Params) {
	b.params = p
}

// Step integrates one fixed step of dt seconds and clears pending input.
func (b *Body) Step(dt float64) {
	p := b.params
	inX := gamemath.ClampAxis(b.input.X)
	jump := b.input.Y < 0
	b.input = gamemath.Vec2{}

	// --- Horizontal ---
	maxSpeed := p.MaxWalkSpeed
	accel := p.MaxAcceleration
	if !b.onGround {
		maxSpeed = p.MaxFlySpeed
		accel *= p.AirControl
	}

	if inX != 0 && math.Abs(b.vel.X) <= maxSpeed {
		b.vel.X = gamemath.ClampSpeed(b.vel.X+inX*accel*dt, maxSpeed)
	} else {
		b.vel.X = gamemath.ApplyFriction(b.vel.X, b.braking()*dt)
		if math.Abs(b.vel.X) < p.StopSpeed {
			b.vel.X = 0
		}
	}

	// --- Jump ---
	if jump && b.onGround {
		b.vel.Y = -p.JumpVelocity
		b.onGround = false
	}

	// --- Gravity ---
	b.vel.Y += p.Gravity * p.GravityScale * dt
	if b.vel.Y > p.TerminalVelocity {
		b.vel.Y = p.TerminalVelocity
	}

	b.resolveHorizontal(b.vel.X * dt)
	b.resolveVertical(b.vel.Y * dt)
	b.object.Update()
}

// braking is the deceleration applied when there is no input or the body
// is faster than it may walk.
func (b *Body) braking() float64 {
	p := b.params
	if !b.onGround {
		return p.BrakingDeceleration * p.AirControl
	}
	return p.BrakingDeceleration + p.GroundFriction*math.Abs(b.vel.X)
}

func (b *Body) resolveHorizontal(dx float64) {
	if dx == 0 {
		return
	}
	if check := b.object.Check(dx, 0, tagSolid); check != nil {
		if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			b.vel.X = 0
		}
	}
	b.object.X += dx
}

func (b *Body) resolveVertical(dy float64) {
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := b.object.Check(0, checkDist, tagSolid); check != nil {
		if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			b.object.Y += contact.Y()
			b.vel.Y = 0
			// Landing, or hitting a ceiling
			b.onGround = dy >= 0
			return
		}
	}

	b.onGround = false
	b.object.Y += dy
}
