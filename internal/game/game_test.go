package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"dungeon-crawl/assets"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/saveload"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	store, err := saveload.NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return New(Options{Seed: 7, Store: store, RunLog: true, RunLogDir: t.TempDir()})
}

// arena swaps the fresh world for an open room with the player at (5,5).
func arena(g *Game) {
	w := g.sim.World
	w.Reset()
	m := gamemap.New(30, 20, 1)
	for y := 1; y < 19; y++ {
		for x := 1; x < 29; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.Rooms = []gamemap.Rect{gamemap.NewRect(1, 1, 27, 17)}
	g.sim.Map = m
	g.sim.Player = factory.NewPlayer(w, 5, 5)
	g.sim.PlayerPos = gamemap.Pt(5, 5)
}

// play starts the current world from the main menu and waits for input.
func play(t *testing.T, g *Game) {
	t.Helper()
	g.Tick(Press(InputConfirm))
	g.Advance()
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; want awaiting_input", g.State().Kind)
	}
}

func step(g *Game, in Input) {
	g.Tick(in)
	g.Advance()
}

func playerHP(g *Game) int {
	return g.World().Get(g.Player(), component.CCombatStats).(component.CombatStats).HP
}

func setPlayerHP(g *Game, hp int) {
	s := g.World().Get(g.Player(), component.CCombatStats).(component.CombatStats)
	s.HP = hp
	g.World().Add(g.Player(), s)
}

func TestMainMenuSkipsLoadWithoutSave(t *testing.T) {
	g := newTestGame(t)
	if g.State().Kind != StateMainMenu || g.State().Selection != SelectNewGame {
		t.Fatalf("initial state = %+v", g.State())
	}
	g.Tick(Press(InputDown))
	if g.State().Selection != SelectQuit {
		t.Fatalf("down from new game = %v; want quit", g.State().Selection)
	}
	g.Tick(Press(InputDown))
	if g.State().Selection != SelectNewGame {
		t.Fatalf("down from quit = %v; want new game", g.State().Selection)
	}
	g.Tick(Press(InputUp))
	if g.State().Selection != SelectQuit {
		t.Fatalf("up from new game = %v; want quit", g.State().Selection)
	}
}

func TestMainMenuEscapeSelectsQuit(t *testing.T) {
	g := newTestGame(t)
	if g.Tick(Press(InputCancel)) {
		t.Fatal("escape only moves the highlight")
	}
	if g.State().Selection != SelectQuit {
		t.Fatalf("selection = %v; want quit", g.State().Selection)
	}
	if !g.Tick(Press(InputConfirm)) {
		t.Fatal("confirming quit should end the session")
	}
}

func TestNewGameRunsFirstPass(t *testing.T) {
	g := newTestGame(t)
	play(t, g)
	pos := g.PlayerPos()
	if !g.Map().IsVisible(pos.X, pos.Y) {
		t.Fatal("first pass should compute the player's view")
	}
	if g.Map().Depth != 1 {
		t.Errorf("depth = %d; want 1", g.Map().Depth)
	}
}

func TestWaitRunsBothTurns(t *testing.T) {
	g := newTestGame(t)
	play(t, g)
	step(g, Press(InputWait))
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; want awaiting_input", g.State().Kind)
	}
	if g.Stats().Turns != 1 {
		t.Errorf("turns = %d; want 1", g.Stats().Turns)
	}
	for _, ct := range []ecs.ComponentType{
		component.CWantsToMelee, component.CSufferDamage, component.CWantsToUseItem,
	} {
		if g.World().Count(ct) != 0 {
			t.Errorf("component %d left over after a turn", ct)
		}
	}
}

func TestBumpingWallKeepsWaiting(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	play(t, g)
	g.sim.PlayerPos = gamemap.Pt(1, 1)
	g.World().Add(g.Player(), component.Position{X: 1, Y: 1})
	g.Tick(Move(-1, 0))
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; a wall bump must not spend the turn", g.State().Kind)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	g := newTestGame(t)
	play(t, g)
	step(g, Press(InputWait))
	before := g.PlayerPos()
	count := len(g.World().Entities())

	step(g, Press(InputSave))
	if g.State().Kind != StateMainMenu || g.State().Selection != SelectLoadGame {
		t.Fatalf("after save state = %+v; want main menu on load", g.State())
	}
	if len(g.MenuEntries()) != 3 {
		t.Fatalf("menu entries = %v; want load offered", g.MenuEntries())
	}

	g.Tick(Press(InputConfirm))
	if g.State().Kind != StatePreRun {
		t.Fatalf("state = %v; want pre_run after load", g.State().Kind)
	}
	g.Advance()
	if g.PlayerPos() != before {
		t.Errorf("player at %+v; want %+v", g.PlayerPos(), before)
	}
	if len(g.World().Entities()) != count {
		t.Errorf("entity count %d; want %d", len(g.World().Entities()), count)
	}
	if g.hasSave() {
		t.Error("save should be deleted once loaded")
	}
}

func TestSaveDisabledWithoutStore(t *testing.T) {
	g := New(Options{Seed: 3})
	play(t, g)
	g.Tick(Press(InputSave))
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; saving needs a store", g.State().Kind)
	}
	if len(g.MenuEntries()) != 2 {
		t.Fatal("load must not be offered without a store")
	}
}

func TestInventoryMenu(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	potion := factory.NewItemInBackpack(g.World(), assets.HealthPotion, g.Player())
	play(t, g)
	setPlayerHP(g, 20)

	g.Tick(Press(InputInventory))
	if g.State().Kind != StateShowInventory {
		t.Fatalf("state = %v; want show_inventory", g.State().Kind)
	}
	if items := g.MenuItems(); len(items) != 1 || items[0] != potion {
		t.Fatalf("menu items = %v", items)
	}
	g.Tick(Letter('c'))
	if g.State().Kind != StateShowInventory {
		t.Fatal("a letter past the end gives no response")
	}
	g.Tick(Press(InputCancel))
	if g.State().Kind != StateAwaitingInput {
		t.Fatal("cancel should close the menu")
	}

	g.Tick(Press(InputInventory))
	step(g, Letter('a'))
	if playerHP(g) != 28 {
		t.Errorf("HP = %d; want 28", playerHP(g))
	}
	if g.World().Alive(potion) {
		t.Error("potion should be consumed")
	}
}

func TestTargetingInvalidClickCancels(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	scroll := factory.NewItemInBackpack(g.World(), assets.MagicMissileScroll, g.Player())
	play(t, g)

	g.Tick(Press(InputInventory))
	g.Tick(Letter('a'))
	st := g.State()
	if st.Kind != StateShowTargeting || st.Range != 6 || st.Item != scroll {
		t.Fatalf("state = %+v; want targeting with range 6", st)
	}
	g.Tick(Target(gamemap.Pt(20, 5)))
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; an out-of-range click cancels", g.State().Kind)
	}
	if !g.World().Alive(scroll) {
		t.Fatal("cancelled targeting must not use the scroll")
	}
}

func TestTargetingHitsMonster(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	orc := factory.NewMonster(g.World(), assets.Orc, 9, 5)
	factory.NewItemInBackpack(g.World(), assets.MagicMissileScroll, g.Player())
	play(t, g)

	for _, p := range g.openTargets() {
		if p.Distance(g.PlayerPos()) > 6 {
			t.Fatalf("target %+v beyond range", p)
		}
	}
	g.Tick(Press(InputInventory))
	g.Tick(Letter('a'))
	step(g, Target(gamemap.Pt(9, 5)))
	if hp := g.World().Get(orc, component.CCombatStats).(component.CombatStats).HP; hp != 8 {
		t.Fatalf("orc HP = %d; want 8", hp)
	}
}

func (g *Game) openTargets() []gamemap.Point {
	saved := g.state
	g.state = RunState{Kind: StateShowTargeting, Range: 6}
	defer func() { g.state = saved }()
	return g.ValidTargets()
}

func TestDescendRequiresStairs(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	play(t, g)
	g.Tick(Press(InputDescend))
	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; descending off stairs does nothing", g.State().Kind)
	}
	last := g.Log().Last(1)
	if len(last) != 1 || last[0] != "There is no way down from here." {
		t.Errorf("log = %v", last)
	}
}

func TestNextLevelKeepsPlayerAndBelongings(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	w := g.World()
	potion := factory.NewItemInBackpack(w, assets.HealthPotion, g.Player())
	dagger := factory.NewItemInBackpack(w, assets.Dagger, g.Player())
	w.Remove(dagger, component.CInBackpack)
	w.Add(dagger, component.Equipped{Owner: g.Player(), Slot: component.SlotMelee})
	floorItem := factory.NewItem(w, assets.Shield, 7, 7)
	orc := factory.NewMonster(w, assets.Orc, 20, 15)
	g.Map().Set(5, 5, gamemap.TileDownStairs)
	play(t, g)
	setPlayerHP(g, 10)

	step(g, Press(InputDescend))

	if g.State().Kind != StateAwaitingInput {
		t.Fatalf("state = %v; want awaiting_input", g.State().Kind)
	}
	if g.Map().Depth != 2 || g.Stats().Depth != 2 {
		t.Fatalf("depth = %d/%d; want 2", g.Map().Depth, g.Stats().Depth)
	}
	if !w.Alive(g.Player()) || !w.Alive(potion) || !w.Alive(dagger) {
		t.Fatal("player and belongings must survive")
	}
	if !w.Has(potion, component.CInBackpack) || !w.Has(dagger, component.CEquipped) {
		t.Error("belongings must keep their inventory state")
	}
	if w.Alive(floorItem) || w.Alive(orc) {
		t.Error("everything else on the old level must be deleted")
	}
	if playerHP(g) != 25 {
		t.Errorf("HP = %d; want 10 + 30/2", playerHP(g))
	}
	cx, cy := g.Map().Rooms[0].Center()
	if g.PlayerPos() != gamemap.Pt(cx, cy) {
		t.Errorf("player at %+v; want first room center (%d,%d)", g.PlayerPos(), cx, cy)
	}
	if vs := w.Get(g.Player(), component.CViewshed).(component.Viewshed); vs.Dirty || !vs.Sees(g.PlayerPos()) {
		t.Error("viewshed should be recomputed on arrival")
	}
}

func TestNextLevelHealIsClamped(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	g.Map().Set(5, 5, gamemap.TileDownStairs)
	play(t, g)
	setPlayerHP(g, 28)
	step(g, Press(InputDescend))
	if playerHP(g) != 30 {
		t.Fatalf("HP = %d; want clamped to 30", playerHP(g))
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	factory.NewMonster(g.World(), assets.Orc, 6, 5)
	play(t, g)
	setPlayerHP(g, 1)

	step(g, Press(InputWait))
	if g.State().Kind != StateGameOver {
		t.Fatalf("state = %v; want game_over", g.State().Kind)
	}
	if !g.World().Alive(g.Player()) {
		t.Fatal("the player entity is never deleted")
	}

	f, err := os.Open(filepath.Join(g.opts.RunLogDir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("run log not written: %v", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatal("run log is empty")
	}
	var rl RunLog
	if err := json.Unmarshal(sc.Bytes(), &rl); err != nil {
		t.Fatalf("decode run log: %v", err)
	}
	if rl.CauseOfDeath != "Orc" || rl.Turns != 1 || rl.Depth != 1 {
		t.Errorf("run log = %+v", rl)
	}

	g.Tick(Press(InputConfirm))
	if g.State().Kind != StateMainMenu || g.State().Selection != SelectNewGame {
		t.Fatalf("state = %+v; want main menu", g.State())
	}
	if playerHP(g) != 30 {
		t.Error("world should be reset with a fresh player")
	}
}

func TestKillsAreCounted(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	orc := factory.NewMonster(g.World(), assets.Orc, 6, 5)
	s := g.World().Get(orc, component.CCombatStats).(component.CombatStats)
	s.HP = 1
	g.World().Add(orc, s)
	play(t, g)

	step(g, Move(1, 0))
	if g.World().Alive(orc) {
		t.Fatal("orc should die")
	}
	if g.Stats().Kills["Orc"] != 1 {
		t.Errorf("kills = %v", g.Stats().Kills)
	}
}

func TestDrawListSortedByRenderOrder(t *testing.T) {
	g := newTestGame(t)
	arena(g)
	factory.NewMonster(g.World(), assets.Orc, 8, 5)
	factory.NewItem(g.World(), assets.HealthPotion, 7, 5)
	factory.NewItem(g.World(), assets.HealthPotion, 28, 18)
	play(t, g)

	list := g.DrawList()
	if len(list) != 3 {
		t.Fatalf("draw list has %d entries; want 3 visible", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Renderable.RenderOrder < list[i].Renderable.RenderOrder {
			t.Fatalf("draw list not descending at %d", i)
		}
	}
	if list[len(list)-1].ID != g.Player() {
		t.Error("the player is drawn last")
	}
}
