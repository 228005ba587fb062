package generate

import (
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/logger"
	"dungeon-crawl/internal/rng"

	"github.com/sirupsen/logrus"
)

// Config controls rooms-and-corridors generation.
type Config struct {
	Width       int
	Height      int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int
	Depth       int
	Rand        *rng.RNG
}

// DefaultConfig returns the classic 80x43 layout with up to 30 rooms.
func DefaultConfig(depth int, r *rng.RNG) *Config {
	return &Config{
		Width:       80,
		Height:      43,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
		Depth:       depth,
		Rand:        r,
	}
}

// Generate places up to MaxRooms non-overlapping rooms, joins each new room
// to the previous one and puts the down stairs at the center of the last
// room. The map always holds at least one room.
func Generate(cfg *Config) *gamemap.Map {
	gmap := gamemap.New(cfg.Width, cfg.Height, cfg.Depth)

	for range cfg.MaxRooms {
		w := cfg.Rand.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := cfg.Rand.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		x := cfg.Rand.RollDice(1, cfg.Width-w-1) - 1
		y := cfg.Rand.RollDice(1, cfg.Height-h-1) - 1
		room := gamemap.NewRect(x, y, w, h)
		if !fits(gmap, room) {
			continue
		}

		overlaps := false
		for _, other := range gmap.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			newX, newY := room.Center()
			prevX, prevY := gmap.Rooms[n-1].Center()
			carveCorridor(gmap, prevX, prevY, newX, newY, cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	if len(gmap.Rooms) == 0 {
		room := fallbackRoom(cfg)
		carveRoom(gmap, room)
		gmap.Rooms = append(gmap.Rooms, room)
	}

	sx, sy := gmap.Rooms[len(gmap.Rooms)-1].Center()
	gmap.Set(sx, sy, gamemap.TileDownStairs)

	logger.Log.WithFields(logrus.Fields{
		"depth": cfg.Depth,
		"rooms": len(gmap.Rooms),
		"size":  []int{cfg.Width, cfg.Height},
	}).Debug("generated map")
	return gmap
}

// carveRoom turns the interior of r into floor, leaving its edge as wall.
func carveRoom(gmap *gamemap.Map, r gamemap.Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

// fits reports whether the carved interior of r stays inside the border.
func fits(gmap *gamemap.Map, r gamemap.Rect) bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X2 < gmap.Width-1 && r.Y2 < gmap.Height-1
}

// fallbackRoom is used only when no random candidate could be placed,
// which happens on maps barely larger than the minimum room size.
func fallbackRoom(cfg *Config) gamemap.Rect {
	w := min(cfg.MinRoomSize, cfg.Width-2)
	h := min(cfg.MinRoomSize, cfg.Height-2)
	return gamemap.NewRect((cfg.Width-w-2)/2, (cfg.Height-h-2)/2, w, h)
}
