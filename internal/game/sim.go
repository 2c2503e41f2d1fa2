package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/starlanes/internal/geom"
	"github.com/spacehole-rogue/starlanes/internal/physics"
)

// Hull is the body of an NPC ship.
type Hull struct {
	Ship   *physics.Ship
	Mask   *geom.Mask
	Race   string
	Class  string
	Rotate bool // allies turn their sprite with their heading
}

// Pilot steers an NPC ship toward its quarry.
type Pilot struct {
	Quarry geom.Vec2
}

// Fleet holds the transient NPC ships of hyperspace as ECS entities.
type Fleet struct {
	ECS    *ecs.World
	ships  *ecs.Map2[Hull, Pilot]
	hulls  *ecs.Map[Hull]
	filter *ecs.Filter2[Hull, Pilot]
	doomed []ecs.Entity
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	w := ecs.NewWorld(64)
	return &Fleet{
		ECS:    w,
		ships:  ecs.NewMap2[Hull, Pilot](w),
		hulls:  ecs.NewMap[Hull](w),
		filter: ecs.NewFilter2[Hull, Pilot](w),
	}
}

// Launch adds a ship to the fleet.
func (f *Fleet) Launch(h Hull) ecs.Entity {
	return f.ships.NewEntity(&h, &Pilot{Quarry: h.Ship.Pos})
}

// Hull returns the hull of a live ship.
func (f *Fleet) Hull(e ecs.Entity) *Hull {
	return f.hulls.Get(e)
}

// Len counts the ships in the fleet.
func (f *Fleet) Len() int {
	n := 0
	query := f.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn for every ship. fn must not add or remove ships.
func (f *Fleet) Each(fn func(e ecs.Entity, h *Hull)) {
	query := f.filter.Query()
	for query.Next() {
		h, _ := query.Get()
		fn(query.Entity(), h)
	}
}

// Steer flies every ship one tick toward quarry and drops those further
// than maxDist from it. It returns the number dropped.
func (f *Fleet) Steer(quarry geom.Vec2, dt, maxDist float64) int {
	var lost []ecs.Entity
	query := f.filter.Query()
	for query.Next() {
		h, p := query.Get()
		p.Quarry = quarry
		h.Ship.Update(Autopilot(h.Ship, p.Quarry), dt)
		if h.Ship.Pos.Dist(quarry) > maxDist {
			lost = append(lost, query.Entity())
		}
	}
	for _, e := range lost {
		f.ECS.RemoveEntity(e)
	}
	return len(lost)
}

// Collide returns the first ship whose hull overlaps the player's: a box
// test first, then a pixel-mask test.
func (f *Fleet) Collide(player *physics.Ship, mask *geom.Mask) (ecs.Entity, bool) {
	var hit ecs.Entity
	found := false
	box := player.Bounds()
	query := f.filter.Query()
	for query.Next() {
		h, _ := query.Get()
		if found || !box.Intersects(h.Ship.Bounds()) {
			continue
		}
		dx, dy := maskOffset(player.Pos, mask, h.Ship.Pos, h.Mask)
		if mask.Overlap(h.Mask, dx, dy) {
			hit, found = query.Entity(), true
		}
	}
	return hit, found
}

// maskOffset is the position of mask b's corner relative to mask a's when
// both are centred on their ships.
func maskOffset(posA geom.Vec2, a *geom.Mask, posB geom.Vec2, b *geom.Mask) (int, int) {
	ax := posA.X - 0.5*float64(a.W)
	ay := posA.Y - 0.5*float64(a.H)
	bx := posB.X - 0.5*float64(b.W)
	by := posB.Y - 0.5*float64(b.H)
	return int(math.Round(bx - ax)), int(math.Round(by - ay))
}

// Doom marks a ship for removal on the next Sweep.
func (f *Fleet) Doom(e ecs.Entity) {
	f.doomed = append(f.doomed, e)
}

// Sweep removes ships marked by Doom.
func (f *Fleet) Sweep() {
	for _, e := range f.doomed {
		if f.ECS.Alive(e) {
			f.ECS.RemoveEntity(e)
		}
	}
	f.doomed = f.doomed[:0]
}

// hullMask is the collision mask of a ship sprite of the given size.
func hullMask(size geom.Vec2) *geom.Mask {
	return geom.DiscMask(int(math.Min(size.X, size.Y)))
}
