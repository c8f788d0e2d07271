package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

var testWorld = World{Width: 800, Height: 600}

func newTestRegistry() *Registry {
	player := Entity{Kind: KindPlayer, W: 60, H: 30}
	player.SetLeft(10)
	player.SetBottom(285)
	return NewRegistry(player)
}

func enemyAt(left, top, vx float64) Entity {
	e := Entity{Kind: KindEnemy, W: 50, H: 16, Vel: core.Vec{X: vx}}
	e.SetLeft(left)
	e.SetTop(top)
	return e
}

func TestUpdateMovesByVelocityTimesDt(t *testing.T) {
	reg := newTestRegistry()
	reg.Player.Vel = core.Vec{X: 30, Y: -12}
	reg.Add(Entity{Kind: KindCloud, Pos: core.Vec{X: 700, Y: 400}, Vel: core.Vec{X: -40}, W: 90, H: 36})

	dts := []float64{1.0 / 60, 1.0 / 30, 0.05, 1.0 / 60}
	var total float64
	for _, dt := range dts {
		out := Update(reg, testWorld, Session{}, dt)
		require.False(t, out.Collided)
		total += dt
	}

	assert.InDelta(t, 10+30*total, reg.Player.Pos.X, 1e-9)
	assert.InDelta(t, 285-12*total, reg.Player.Pos.Y, 1e-9)
	require.Len(t, reg.Clouds, 1)
	assert.InDelta(t, 700-40*total, reg.Clouds[0].Pos.X, 1e-9)
}

func TestUpdateEvictsEntitiesPastLeftEdge(t *testing.T) {
	reg := newTestRegistry()
	// Right edges move from 5 to -5
	reg.Add(enemyAt(-45, 500, -10))
	reg.Add(Entity{Kind: KindCloud, Pos: core.Vec{X: -85, Y: 100}, Vel: core.Vec{X: -10}, W: 90, H: 36})
	reg.Add(enemyAt(300, 500, -10))

	out := Update(reg, testWorld, Session{}, 1.0)

	assert.Equal(t, 1, out.EnemiesEvicted)
	assert.Equal(t, 1, out.CloudsEvicted)
	require.Len(t, reg.Enemies, 1)
	assert.Equal(t, 290.0, reg.Enemies[0].Left())
	assert.Empty(t, reg.Clouds)
}

func TestUpdateKeepsEntityTouchingLeftEdge(t *testing.T) {
	reg := newTestRegistry()
	reg.Add(enemyAt(-40, 500, -10)) // right edge lands exactly on 0

	out := Update(reg, testWorld, Session{}, 1.0)

	assert.Zero(t, out.EnemiesEvicted)
	require.Len(t, reg.Enemies, 1)
	assert.Equal(t, 0.0, reg.Enemies[0].Right())
}

func TestSpawnedEnemyLeavesOnceFullyOffScreen(t *testing.T) {
	reg := newTestRegistry()
	reg.Add(enemyAt(880, 300, -10))

	frames := 0
	for len(reg.Enemies) > 0 {
		e := reg.Enemies[0]
		require.GreaterOrEqual(t, e.Right(), 0.0, "enemy with right < 0 must not survive a frame")
		Update(reg, testWorld, Session{}, 1.0)
		frames++
		require.Less(t, frames, 200, "enemy never left")
	}

	// 880 + 50 = 930 units to travel before the right edge passes 0
	assert.Equal(t, 94, frames)
}

func TestClampToWorld(t *testing.T) {
	tests := []struct {
		name         string
		left, bottom float64
		wantLeft     float64
		wantBottom   float64
	}{
		{"inside", 100, 100, 100, 100},
		{"past top", 100, 590, 100, 570},
		{"past right", 790, 100, 740, 100},
		{"below bottom", 100, -20, 100, 0},
		{"past left", -5, 100, 0, 100},
		{"corner", -30, 700, 0, 570},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Kind: KindPlayer, Pos: core.Vec{X: tc.left, Y: tc.bottom}, W: 60, H: 30}
			ClampToWorld(&e, testWorld)

			assert.Equal(t, tc.wantLeft, e.Left())
			assert.Equal(t, tc.wantBottom, e.Bottom())
			assert.GreaterOrEqual(t, e.Left(), 0.0)
			assert.LessOrEqual(t, e.Right(), testWorld.Width)
			assert.GreaterOrEqual(t, e.Bottom(), 0.0)
			assert.LessOrEqual(t, e.Top(), testWorld.Height)
		})
	}
}

func TestUpdateClampsPlayerEveryFrame(t *testing.T) {
	reg := newTestRegistry()
	reg.Player.Vel = core.Vec{X: 900, Y: 900}

	for i := 0; i < 120; i++ {
		Update(reg, testWorld, Session{}, 1.0/60)
		p := reg.Player
		require.True(t, p.Left() >= 0 && p.Right() <= 800 && p.Bottom() >= 0 && p.Top() <= 600,
			"frame %d: player out of bounds at %+v", i, p.Box())
	}
	assert.Equal(t, 800.0, reg.Player.Right())
	assert.Equal(t, 600.0, reg.Player.Top())
}

func TestUpdatePausedChangesNothing(t *testing.T) {
	reg := newTestRegistry()
	reg.Player.Vel = core.Vec{X: 60}
	reg.Add(enemyAt(-45, 500, -10))
	beforePlayer := reg.Player
	beforeEnemies := append([]Entity(nil), reg.Enemies...)

	out := Update(reg, testWorld, Session{Paused: true}, 1.0)

	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, beforePlayer, reg.Player)
	assert.Equal(t, beforeEnemies, reg.Enemies)
}

func TestUpdateDetectsCollision(t *testing.T) {
	reg := newTestRegistry()
	reg.Player.SetLeft(400)
	reg.Player.SetBottom(300)
	reg.Add(enemyAt(420, 320, 0))

	out := Update(reg, testWorld, Session{}, 1.0/60)
	assert.True(t, out.Collided)
}

func TestCollidingIgnoresTouchingEdgesAndClouds(t *testing.T) {
	reg := newTestRegistry()
	reg.Player.SetLeft(400)
	reg.Player.SetBottom(300)

	// Enemy whose left edge touches the player's right edge
	reg.Add(enemyAt(460, 320, 0))
	// Cloud fully overlapping the player
	reg.Add(Entity{Kind: KindCloud, Pos: core.Vec{X: 390, Y: 290}, W: 90, H: 36})

	assert.False(t, Colliding(reg))

	reg.Enemies[0].SetLeft(459)
	assert.True(t, Colliding(reg))
}

func TestRegistryDrawOrder(t *testing.T) {
	reg := newTestRegistry()
	reg.Add(enemyAt(500, 300, 0))
	reg.Add(Entity{Kind: KindCloud})
	reg.Add(enemyAt(600, 300, 0))

	var kinds []Kind
	reg.Each(func(e *Entity) { kinds = append(kinds, e.Kind) })

	assert.Equal(t, []Kind{KindCloud, KindEnemy, KindEnemy, KindPlayer}, kinds)
	assert.Equal(t, 4, reg.Len())
}

func TestKindEvictable(t *testing.T) {
	assert.False(t, KindPlayer.Evictable())
	assert.True(t, KindEnemy.Evictable())
	assert.True(t, KindCloud.Evictable())

	p := Entity{Kind: KindPlayer, Pos: core.Vec{X: -100}, W: 10}
	assert.False(t, p.Expired(), "the player is clamped, never evicted")
}
