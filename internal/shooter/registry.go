package shooter

// Registry holds every live entity. Append order within a collection is
// draw order; collections are drawn clouds first, then enemies, then the player.
type Registry struct {
	Player  Entity
	Enemies []Entity
	Clouds  []Entity
}

// NewRegistry creates a registry holding only the player.
func NewRegistry(player Entity) *Registry {
	return &Registry{
		Player:  player,
		Enemies: make([]Entity, 0, 32),
		Clouds:  make([]Entity, 0, 8),
	}
}

// Add appends an entity to the collection for its kind.
// Adding a player replaces the current one.
func (r *Registry) Add(e Entity) {
	switch e.Kind {
	case KindEnemy:
		r.Enemies = append(r.Enemies, e)
	case KindCloud:
		r.Clouds = append(r.Clouds, e)
	case KindPlayer:
		r.Player = e
	}
}

// Len returns the number of live entities, the player included.
func (r *Registry) Len() int {
	return 1 + len(r.Enemies) + len(r.Clouds)
}

// Each calls fn for every entity in draw order.
func (r *Registry) Each(fn func(e *Entity)) {
	for i := range r.Clouds {
		fn(&r.Clouds[i])
	}
	for i := range r.Enemies {
		fn(&r.Enemies[i])
	}
	fn(&r.Player)
}

// Evict removes expired enemies and clouds and returns how many of each were dropped.
func (r *Registry) Evict() (enemies, clouds int) {
	r.Enemies, enemies = evictExpired(r.Enemies)
	r.Clouds, clouds = evictExpired(r.Clouds)
	return enemies, clouds
}

// evictExpired filters list in place and returns it with the removed count.
func evictExpired(list []Entity) ([]Entity, int) {
	valid := list[:0]
	for _, e := range list {
		if !e.Expired() {
			valid = append(valid, e)
		}
	}
	removed := len(list) - len(valid)
	clear(list[len(valid):])
	return valid, removed
}

// Clear removes all enemies and clouds. The player stays.
func (r *Registry) Clear() {
	clear(r.Enemies)
	clear(r.Clouds)
	r.Enemies = r.Enemies[:0]
	r.Clouds = r.Clouds[:0]
}
