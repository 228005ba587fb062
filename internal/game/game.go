package game

import (
	"cmp"
	"context"
	"slices"
	"time"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/gamelog"
	"dungeon-crawl/internal/gamemap"
	"dungeon-crawl/internal/generate"
	"dungeon-crawl/internal/logger"
	"dungeon-crawl/internal/rng"
	"dungeon-crawl/internal/saveload"
	"dungeon-crawl/internal/system"

	"github.com/sirupsen/logrus"
)

// storeTimeout bounds every save-slot call.
const storeTimeout = 5 * time.Second

// Options configures a Game. Zero map settings fall back to the classic
// 80x43 layout with 30 rooms.
type Options struct {
	Width, Height int
	MaxRooms      int
	Seed          int64
	Store         saveload.Store // nil disables saving and loading
	RunLog        bool
	RunLogDir     string
}

// Game owns the simulation and sequences it through the run-state machine.
type Game struct {
	opts  Options
	rng   *rng.RNG
	sim   *system.Context
	fsm   *machine
	state RunState
	stats RunLog
	// fresh is true until the current world is first played.
	fresh bool
}

// New builds a game sitting at the main menu with a fresh depth-1 world.
func New(opts Options) *Game {
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 43
	}
	if opts.MaxRooms == 0 {
		opts.MaxRooms = 30
	}
	r := rng.New(opts.Seed)
	g := &Game{
		opts: opts,
		rng:  r,
		sim: &system.Context{
			World: ecs.NewWorld(),
			Rand:  r,
			Log:   gamelog.New(),
		},
		fsm:   newMachine(),
		state: RunState{Kind: StateMainMenu, Selection: SelectNewGame},
	}
	g.resetWorld()
	logger.Log.WithFields(logrus.Fields{
		"seed":   r.Seed(),
		"width":  opts.Width,
		"height": opts.Height,
	}).Info("game created")
	return g
}

func (g *Game) levelConfig(depth int) *generate.Config {
	cfg := generate.DefaultConfig(depth, g.rng)
	cfg.Width = g.opts.Width
	cfg.Height = g.opts.Height
	cfg.MaxRooms = g.opts.MaxRooms
	return cfg
}

// resetWorld deletes every entity and builds a new depth-1 level with a new
// player.
func (g *Game) resetWorld() {
	w := g.sim.World
	w.Reset()
	gmap := generate.Generate(g.levelConfig(1))
	cx, cy := gmap.Rooms[0].Center()
	player := factory.NewPlayer(w, cx, cy)
	for _, room := range gmap.Rooms[1:] {
		factory.SpawnRoom(w, gmap, g.rng, room)
	}

	g.sim.Map = gmap
	g.sim.Player = player
	g.sim.PlayerPos = gamemap.Pt(cx, cy)
	g.sim.PlayerDead = false
	g.sim.PlayerHitBy = ""
	g.sim.MonsterTurn = false
	g.sim.Log.Clear()
	g.sim.Log.Add("Welcome to the dungeon.")
	g.stats = newRunLog(g.rng.Seed(), 1)
	g.fresh = true
}

func (g *Game) setState(rs RunState) {
	g.fsm.enter(rs.Kind)
	g.state = rs
	if rs.Kind == StatePreRun {
		g.fresh = false
	}
}

// WaitingForInput reports whether the current phase needs an input to
// progress.
func (g *Game) WaitingForInput() bool {
	switch g.state.Kind {
	case StatePreRun, StatePlayerTurn, StateMonsterTurn, StateSaveGame, StateNextLevel:
		return false
	}
	return true
}

// Advance runs phases that need no input until one does.
func (g *Game) Advance() {
	for !g.WaitingForInput() {
		g.Tick(Input{})
	}
}

// Tick runs one phase of the run-state machine and then the death sweep.
// It returns true when the player chose to quit.
func (g *Game) Tick(in Input) (quit bool) {
	switch g.state.Kind {
	case StateMainMenu:
		quit = g.tickMainMenu(in)
	case StatePreRun:
		system.RunSystems(g.sim)
		g.setState(RunState{Kind: StateAwaitingInput})
	case StateAwaitingInput:
		g.tickPlayerInput(in)
	case StatePlayerTurn:
		g.stats.Turns++
		system.RunSystems(g.sim)
		g.setState(RunState{Kind: StateMonsterTurn})
	case StateMonsterTurn:
		g.sim.MonsterTurn = true
		system.RunSystems(g.sim)
		g.sim.MonsterTurn = false
		g.setState(RunState{Kind: StateAwaitingInput})
	case StateShowInventory:
		g.tickInventory(in)
	case StateShowDropItem:
		if res, item := itemMenu(g.MenuItems(), in); res == MenuSelected {
			system.DropItem(g.sim, item)
			g.setState(RunState{Kind: StatePlayerTurn})
		} else if res == MenuCancel {
			g.setState(RunState{Kind: StateAwaitingInput})
		}
	case StateShowRemoveEquipment:
		if res, item := itemMenu(g.MenuItems(), in); res == MenuSelected {
			system.RemoveEquipment(g.sim, item)
			g.setState(RunState{Kind: StatePlayerTurn})
		} else if res == MenuCancel {
			g.setState(RunState{Kind: StateAwaitingInput})
		}
	case StateShowTargeting:
		g.tickTargeting(in)
	case StateSaveGame:
		g.tickSave()
	case StateNextLevel:
		g.goToNextLevel()
		g.setState(RunState{Kind: StatePreRun})
	case StateGameOver:
		if in.Kind != InputNone {
			g.resetWorld()
			g.setState(RunState{Kind: StateMainMenu, Selection: SelectNewGame})
		}
	}
	g.sweepDead()
	return quit
}

func (g *Game) tickMainMenu(in Input) bool {
	sel := g.state.Selection
	switch in.Kind {
	case InputUp:
		sel = g.cycleMenu(sel, -1)
	case InputDown:
		sel = g.cycleMenu(sel, 1)
	case InputCancel:
		sel = SelectQuit
	case InputConfirm:
		switch sel {
		case SelectQuit:
			return true
		case SelectNewGame:
			if !g.fresh {
				g.resetWorld()
			}
			g.setState(RunState{Kind: StatePreRun})
			return false
		case SelectLoadGame:
			if err := g.loadGame(); err != nil {
				logger.Log.WithError(err).Error("load failed")
				sel = SelectNewGame
				break
			}
			g.setState(RunState{Kind: StatePreRun})
			return false
		}
	}
	g.state.Selection = sel
	return false
}

func (g *Game) tickPlayerInput(in Input) {
	next := StateAwaitingInput
	switch in.Kind {
	case InputMove:
		if system.TryMovePlayer(g.sim, in.DX, in.DY).SpendsTurn() {
			next = StatePlayerTurn
		}
	case InputWait:
		next = StatePlayerTurn
	case InputPickUp:
		system.PickUp(g.sim)
		next = StatePlayerTurn
	case InputInventory:
		next = StateShowInventory
	case InputDrop:
		next = StateShowDropItem
	case InputRemove:
		next = StateShowRemoveEquipment
	case InputSave, InputCancel:
		if g.opts.Store != nil {
			next = StateSaveGame
		}
	case InputDescend:
		if system.TryDescend(g.sim) {
			next = StateNextLevel
		}
	}
	g.setState(RunState{Kind: next})
}

func (g *Game) tickInventory(in Input) {
	res, item := itemMenu(g.MenuItems(), in)
	switch res {
	case MenuCancel:
		g.setState(RunState{Kind: StateAwaitingInput})
	case MenuSelected:
		if c := g.sim.World.Get(item, component.CRanged); c != nil {
			g.setState(RunState{Kind: StateShowTargeting, Range: c.(component.Ranged).Range, Item: item})
			return
		}
		system.UseItem(g.sim, item, nil)
		g.setState(RunState{Kind: StatePlayerTurn})
	}
}

// tickTargeting resolves the targeting prompt on a confirmed click. A click
// outside the valid area cancels.
func (g *Game) tickTargeting(in Input) {
	switch in.Kind {
	case InputCancel:
		g.setState(RunState{Kind: StateAwaitingInput})
	case InputTarget:
		if !g.isValidTarget(in.Point) {
			g.setState(RunState{Kind: StateAwaitingInput})
			return
		}
		p := in.Point
		system.UseItem(g.sim, g.state.Item, &p)
		g.setState(RunState{Kind: StatePlayerTurn})
	}
}

func (g *Game) tickSave() {
	if err := g.saveGame(); err != nil {
		logger.Log.WithError(err).Error("save failed")
		g.sim.Log.Add("The game could not be saved.")
		g.setState(RunState{Kind: StateAwaitingInput})
		return
	}
	g.setState(RunState{Kind: StateMainMenu, Selection: SelectLoadGame})
}

// sweepDead removes the dead and ends the run when the player is among them.
func (g *Game) sweepDead() {
	killed, died := system.DeleteTheDead(g.sim)
	for _, name := range killed {
		g.stats.Kills[name]++
	}
	if died {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.stats.CauseOfDeath = g.sim.PlayerHitBy
	if g.stats.CauseOfDeath == "" {
		g.stats.CauseOfDeath = "unknown"
	}
	g.stats.EndedAt = time.Now().UTC()
	logger.Log.WithFields(logrus.Fields{
		"depth":  g.stats.Depth,
		"turns":  g.stats.Turns,
		"killer": g.stats.CauseOfDeath,
	}).Info("player died")
	if g.opts.RunLog {
		if err := appendRunLog(g.opts.RunLogDir, g.stats); err != nil {
			logger.Log.WithError(err).Warn("run log not written")
		}
	}
	g.setState(RunState{Kind: StateGameOver})
}

func (g *Game) saveGame() error {
	data, err := saveload.Encode(g.sim.World, g.sim.Map)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := g.opts.Store.Save(ctx, data); err != nil {
		return err
	}
	logger.Log.WithField("bytes", len(data)).Info("game saved")
	return nil
}

// loadGame replaces the world with the saved one and empties the slot.
func (g *Game) loadGame() error {
	if g.opts.Store == nil {
		return saveload.ErrNoSave
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	data, err := g.opts.Store.Load(ctx)
	if err != nil {
		return err
	}
	loaded, err := saveload.Decode(data, g.sim.World)
	if err != nil {
		return err
	}
	g.sim.Map = loaded.Map
	g.sim.Player = loaded.Player
	g.sim.PlayerPos = loaded.PlayerPos
	g.sim.PlayerDead = false
	g.sim.PlayerHitBy = ""
	g.sim.Log.Clear()
	g.sim.Log.Add("Welcome back.")
	g.stats = newRunLog(g.rng.Seed(), loaded.Map.Depth)

	if err := g.opts.Store.Delete(ctx); err != nil {
		logger.Log.WithError(err).Warn("loaded save not deleted")
	}
	logger.Log.WithField("depth", loaded.Map.Depth).Info("game loaded")
	return nil
}

func (g *Game) hasSave() bool {
	if g.opts.Store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	ok, err := g.opts.Store.Exists(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("save slot check failed")
		return false
	}
	return ok
}

// Drawable is one entity to draw at a map position.
type Drawable struct {
	ID         ecs.EntityID
	Pos        gamemap.Point
	Renderable component.Renderable
}

// DrawList returns the renderable entities on visible tiles, sorted by
// descending render order so the lowest order is drawn last.
func (g *Game) DrawList() []Drawable {
	w, m := g.sim.World, g.sim.Map
	var out []Drawable
	for _, id := range w.Query(component.CPosition, component.CRenderable) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		out = append(out, Drawable{
			ID:         id,
			Pos:        gamemap.Pt(pos.X, pos.Y),
			Renderable: w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	slices.SortStableFunc(out, func(a, b Drawable) int {
		return cmp.Compare(b.Renderable.RenderOrder, a.Renderable.RenderOrder)
	})
	return out
}

// State returns the current run state.
func (g *Game) State() RunState { return g.state }

// Map returns the current level.
func (g *Game) Map() *gamemap.Map { return g.sim.Map }

// World returns the entity store.
func (g *Game) World() *ecs.World { return g.sim.World }

// Player returns the player entity.
func (g *Game) Player() ecs.EntityID { return g.sim.Player }

// PlayerPos returns the tracked player position.
func (g *Game) PlayerPos() gamemap.Point { return g.sim.PlayerPos }

// Log returns the in-game message log.
func (g *Game) Log() *gamelog.Log { return g.sim.Log }

// Stats returns the statistics of the current run.
func (g *Game) Stats() RunLog { return g.stats }

// PlayerStats returns the player's combat stats with equipment bonuses
// folded in.
func (g *Game) PlayerStats() component.CombatStats {
	w := g.sim.World
	c := w.Get(g.sim.Player, component.CCombatStats)
	if c == nil {
		return component.CombatStats{}
	}
	s := c.(component.CombatStats)
	s.Power += system.PowerBonus(w, g.sim.Player)
	s.Defense += system.DefenseBonus(w, g.sim.Player)
	return s
}
