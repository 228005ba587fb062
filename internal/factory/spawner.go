package factory

import (
	"dungeon-crawl/assets"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/rng"

	"github.com/zyedidia/generic/mapset"
)

// RandomMonster rolls 1d3 for the monster kind and spawns it at (x, y).
func RandomMonster(w *ecs.World, r *rng.RNG, x, y int) ecs.EntityID {
	return NewMonster(w, assets.MonsterForRoll(r.RollDice(1, 3)), x, y)
}

// RandomItem rolls 1d6 for the item kind and spawns it at (x, y).
func RandomItem(w *ecs.World, r *rng.RNG, x, y int) ecs.EntityID {
	return NewItem(w, assets.ItemForRoll(r.RollDice(1, 6)), x, y)
}

// SpawnRoom fills a room with monsters and items. Counts are rolled first,
// then every spawn point, then each entity kind, so one seed always yields
// the same room.
func SpawnRoom(w *ecs.World, gmap *gamemap.Map, r *rng.RNG, room gamemap.Rect) []ecs.EntityID {
	numMonsters := r.RollDice(1, assets.MaxMonsters+2) - 3
	numItems := r.RollDice(1, assets.MaxItems+2) - 3

	monsterPoints := spawnPoints(gmap, r, room, numMonsters)
	itemPoints := spawnPoints(gmap, r, room, numItems)

	var spawned []ecs.EntityID
	for _, idx := range monsterPoints {
		spawned = append(spawned, RandomMonster(w, r, idx%gmap.Width, idx/gmap.Width))
	}
	for _, idx := range itemPoints {
		spawned = append(spawned, RandomItem(w, r, idx%gmap.Width, idx/gmap.Width))
	}
	return spawned
}

// spawnPoints picks n distinct tile indices inside room, in pick order.
func spawnPoints(gmap *gamemap.Map, r *rng.RNG, room gamemap.Rect, n int) []int {
	w, h := abs(room.X2-room.X1), abs(room.Y2-room.Y1)
	n = min(n, w*h)
	if n <= 0 {
		return nil
	}
	seen := mapset.New[int]()
	points := make([]int, 0, n)
	for len(points) < n {
		x := room.X1 + r.RollDice(1, w)
		y := room.Y1 + r.RollDice(1, h)
		idx := gmap.Idx(x, y)
		if seen.Has(idx) {
			continue
		}
		seen.Put(idx)
		points = append(points, idx)
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
