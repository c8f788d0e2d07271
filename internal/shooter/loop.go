package shooter

// World is the logical playfield size in world units.
type World struct {
	Width, Height float64
}

// Session holds the flags the player toggles during a game.
// It is passed by value into every update.
type Session struct {
	Paused bool
	Debug  bool // Draw hit boxes and stats
}

// Outcome reports what happened during one frame update.
type Outcome struct {
	EnemiesEvicted int
	CloudsEvicted  int
	Collided       bool
}

// Update advances every entity by dt seconds, evicts the ones that left the
// playfield, keeps the player inside it and checks for a player/enemy
// collision. Nothing happens while the session is paused.
func Update(reg *Registry, world World, session Session, dt float64) Outcome {
	if session.Paused {
		return Outcome{}
	}

	reg.Each(func(e *Entity) {
		e.Move(dt)
	})

	var out Outcome
	out.EnemiesEvicted, out.CloudsEvicted = reg.Evict()

	ClampToWorld(&reg.Player, world)

	out.Collided = Colliding(reg)
	return out
}

// ClampToWorld pushes each edge of e back inside the world independently.
func ClampToWorld(e *Entity, world World) {
	if e.Top() > world.Height {
		e.SetTop(world.Height)
	}
	if e.Right() > world.Width {
		e.SetRight(world.Width)
	}
	if e.Bottom() < 0 {
		e.SetBottom(0)
	}
	if e.Left() < 0 {
		e.SetLeft(0)
	}
}

// Colliding reports whether the player overlaps any enemy.
func Colliding(reg *Registry) bool {
	player := reg.Player.Box()
	for _, e := range reg.Enemies {
		if player.Overlaps(e.Box()) {
			return true
		}
	}
	return false
}
