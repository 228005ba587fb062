package generate

import (
	"testing"

	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/rng"
)

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		gmap := Generate(DefaultConfig(1, rng.New(seed)))
		if len(gmap.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms", seed)
		}
		for i, a := range gmap.Rooms {
			for _, b := range gmap.Rooms[i+1:] {
				if a.Intersects(b) {
					t.Fatalf("seed %d: rooms %+v and %+v overlap", seed, a, b)
				}
			}
		}
	}
}

func TestGenerateBorderStaysWall(t *testing.T) {
	gmap := Generate(DefaultConfig(1, rng.New(3)))
	for x := range gmap.Width {
		if gmap.IsWalkable(x, 0) || gmap.IsWalkable(x, gmap.Height-1) {
			t.Fatalf("border carved at column %d", x)
		}
	}
	for y := range gmap.Height {
		if gmap.IsWalkable(0, y) || gmap.IsWalkable(gmap.Width-1, y) {
			t.Fatalf("border carved at row %d", y)
		}
	}
}

func TestGenerateRoomCentersAreFloor(t *testing.T) {
	gmap := Generate(DefaultConfig(2, rng.New(11)))
	for _, r := range gmap.Rooms {
		cx, cy := r.Center()
		if !gmap.IsWalkable(cx, cy) {
			t.Fatalf("room center (%d,%d) not walkable", cx, cy)
		}
	}
	if gmap.Depth != 2 {
		t.Errorf("Depth = %d; want 2", gmap.Depth)
	}
}

func TestGenerateStairsInLastRoom(t *testing.T) {
	gmap := Generate(DefaultConfig(1, rng.New(5)))
	last := gmap.Rooms[len(gmap.Rooms)-1]
	cx, cy := last.Center()
	if gmap.At(cx, cy) != gamemap.TileDownStairs {
		t.Fatalf("tile at last room center = %v; want down stairs", gmap.At(cx, cy))
	}
	stairs := 0
	for _, k := range gmap.Tiles {
		if k == gamemap.TileDownStairs {
			stairs++
		}
	}
	if stairs != 1 {
		t.Fatalf("found %d stairs; want 1", stairs)
	}
}

func TestGenerateAllRoomsConnected(t *testing.T) {
	gmap := Generate(DefaultConfig(1, rng.New(8)))
	sx, sy := gmap.Rooms[0].Center()
	start := gamemap.Pt(sx, sy)
	for _, r := range gmap.Rooms[1:] {
		cx, cy := r.Center()
		if gmap.PathTo(start, gamemap.Pt(cx, cy), nil) == nil {
			t.Fatalf("room at (%d,%d) unreachable from first room", cx, cy)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(DefaultConfig(1, rng.New(77)))
	b := Generate(DefaultConfig(1, rng.New(77)))
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs", i)
		}
	}
}

func TestGenerateTinyMapFallsBack(t *testing.T) {
	cfg := &Config{Width: 9, Height: 9, MaxRooms: 5, MinRoomSize: 6, MaxRoomSize: 10, Depth: 1, Rand: rng.New(1)}
	gmap := Generate(cfg)
	if len(gmap.Rooms) == 0 {
		t.Fatal("expected at least one room")
	}
	cx, cy := gmap.Rooms[0].Center()
	if !gmap.IsWalkable(cx, cy) {
		t.Fatal("fallback room center should be walkable")
	}
}
