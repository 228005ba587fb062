package generate

import "dungeon-crawl/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between two room centers. The coin
// flip picks whether the horizontal or the vertical leg comes first.
func carveCorridor(gmap *gamemap.Map, prevX, prevY, newX, newY int, cfg *Config) {
	if cfg.Rand.Range(0, 2) == 1 {
		carveH(gmap, prevX, newX, prevY)
		carveV(gmap, prevY, newY, newX)
	} else {
		carveV(gmap, prevY, newY, prevX)
		carveH(gmap, prevX, newX, newY)
	}
}

func carveH(gmap *gamemap.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carveIdx(gmap, gmap.Idx(x, y))
	}
}

func carveV(gmap *gamemap.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carveIdx(gmap, gmap.Idx(x, y))
	}
}

// carveIdx writes floor only for indices strictly inside the tile slice.
func carveIdx(gmap *gamemap.Map, idx int) {
	if idx > 0 && idx < gmap.Len() {
		gmap.Tiles[idx] = gamemap.TileFloor
	}
}
