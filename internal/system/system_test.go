package system

import (
	"testing"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/gamelog"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/rng"
)

// setupWorld builds a w x h room of floor bounded by walls with the player
// at (px, py) and an up-to-date map index.
func setupWorld(w, h, px, py int) *Context {
	m := gamemap.New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	world := ecs.NewWorld()
	player := factory.NewPlayer(world, px, py)
	ctx := &Context{
		World:     world,
		Map:       m,
		Player:    player,
		PlayerPos: gamemap.Pt(px, py),
		Rand:      rng.New(1),
		Log:       gamelog.New(),
	}
	MapIndex(ctx)
	return ctx
}

func hp(ctx *Context, id ecs.EntityID) int {
	return ctx.World.Get(id, component.CCombatStats).(component.CombatStats).HP
}

func setStats(ctx *Context, id ecs.EntityID, s component.CombatStats) {
	ctx.World.Add(id, s)
}

func posOf(ctx *Context, id ecs.EntityID) gamemap.Point {
	p := ctx.World.Get(id, component.CPosition).(component.Position)
	return gamemap.Pt(p.X, p.Y)
}

func lastLog(ctx *Context) string {
	last := ctx.Log.Last(1)
	if len(last) == 0 {
		return ""
	}
	return last[0]
}

func TestRunSystemsPanicsWithoutPlayer(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	ctx.World.DestroyEntity(ctx.Player)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a missing player")
		}
	}()
	RunSystems(ctx)
}

func TestRunSystemsClearsIntents(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	MapIndex(ctx)
	if TryMovePlayer(ctx, 1, 0) != MoveAttack {
		t.Fatal("expected bump attack")
	}
	RunSystems(ctx)
	for _, ct := range []ecs.ComponentType{
		component.CWantsToMelee, component.CSufferDamage, component.CWantsToUseItem,
		component.CWantsToDropItem, component.CWantsToPickUpItem, component.CWantsToRemoveEquipment,
	} {
		if n := ctx.World.Count(ct); n != 0 {
			t.Errorf("component %d still on %d entities", ct, n)
		}
	}
	if hp(ctx, orc) != 16-(5-1) {
		t.Errorf("orc HP = %d; want 12", hp(ctx, orc))
	}
}

func TestMapIndexBlocksMonstersOnly(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	factory.NewMonster(ctx.World, orcDef(), 5, 5)
	MapIndex(ctx)
	if ctx.Map.BlockedAt(3, 3) {
		t.Error("player tile must not be blocked")
	}
	if !ctx.Map.BlockedAt(5, 5) {
		t.Error("monster tile must be blocked")
	}
	if !ctx.Map.BlockedAt(0, 0) {
		t.Error("walls must be blocked")
	}
	if got := len(ctx.Map.Content(3, 3)); got != 1 {
		t.Errorf("player tile content = %d entities; want 1", got)
	}
}
