package system

import (
	"testing"

	"dungeon-crawl/assets"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/factory"
)

func TestMeleeDamageIsPowerMinusDefense(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	setStats(ctx, ctx.Player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 0, Power: 5})
	setStats(ctx, orc, component.CombatStats{MaxHP: 10, HP: 10, Defense: 2, Power: 1})

	ctx.World.Add(ctx.Player, component.WantsToMelee{Target: orc})
	MeleeCombat(ctx)
	Damage(ctx)

	if hp(ctx, orc) != 7 {
		t.Fatalf("orc HP = %d; want 7", hp(ctx, orc))
	}
	if lastLog(ctx) != "Player hits Orc, for 3 hp." {
		t.Errorf("log = %q", lastLog(ctx))
	}
}

func TestMeleeNoDamageWhenOutclassed(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	setStats(ctx, ctx.Player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 0, Power: 1})
	setStats(ctx, orc, component.CombatStats{MaxHP: 10, HP: 10, Defense: 5, Power: 1})

	ctx.World.Add(ctx.Player, component.WantsToMelee{Target: orc})
	MeleeCombat(ctx)
	Damage(ctx)

	if hp(ctx, orc) != 10 {
		t.Fatalf("orc HP = %d; want 10", hp(ctx, orc))
	}
	if ctx.World.Has(orc, component.CSufferDamage) {
		t.Error("no damage entry should be queued")
	}
	if lastLog(ctx) != "Player is unable to hurt Orc" {
		t.Errorf("log = %q", lastLog(ctx))
	}
}

func TestMeleeCountsEquipmentBonuses(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	dagger := factory.NewItemInBackpack(ctx.World, assets.Dagger, ctx.Player)
	ctx.World.Remove(dagger, component.CInBackpack)
	ctx.World.Add(dagger, component.Equipped{Owner: ctx.Player, Slot: component.SlotMelee})
	shield := factory.NewItemInBackpack(ctx.World, assets.Shield, orc)
	ctx.World.Remove(shield, component.CInBackpack)
	ctx.World.Add(shield, component.Equipped{Owner: orc, Slot: component.SlotShield})

	// player power 5+2, orc defense 1+1
	if got := MeleeDamage(ctx.World, ctx.Player, orc); got != 5 {
		t.Fatalf("MeleeDamage = %d; want 5", got)
	}
}

func TestMeleeSkipsDeadAttackerAndTarget(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	setStats(ctx, orc, component.CombatStats{MaxHP: 16, HP: 0, Defense: 1, Power: 4})
	ctx.World.Add(ctx.Player, component.WantsToMelee{Target: orc})
	ctx.World.Add(orc, component.WantsToMelee{Target: ctx.Player})
	MeleeCombat(ctx)
	if ctx.World.Count(component.CSufferDamage) != 0 {
		t.Fatal("dead combatants must not deal or take melee damage")
	}
	if ctx.World.Count(component.CWantsToMelee) != 0 {
		t.Fatal("melee intents must be cleared")
	}
}

func TestDamageSumsAllHits(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	InflictDamage(ctx, ctx.Player, orc, 3)
	InflictDamage(ctx, ctx.Player, orc, 4)
	InflictDamage(ctx, ctx.Player, orc, 0)
	Damage(ctx)
	if hp(ctx, orc) != 9 {
		t.Fatalf("orc HP = %d; want 9", hp(ctx, orc))
	}
}

func TestInflictDamageRecordsPlayerAttacker(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	InflictDamage(ctx, orc, ctx.Player, 2)
	if ctx.PlayerHitBy != "Orc" {
		t.Fatalf("PlayerHitBy = %q; want Orc", ctx.PlayerHitBy)
	}
}

func TestDeleteTheDeadIsIdempotent(t *testing.T) {
	ctx := setupWorld(10, 10, 3, 3)
	orc := factory.NewMonster(ctx.World, orcDef(), 4, 3)
	goblin := factory.NewMonster(ctx.World, assets.Goblin, 5, 3)
	setStats(ctx, orc, component.CombatStats{MaxHP: 16, HP: -3, Defense: 1, Power: 4})
	setStats(ctx, ctx.Player, component.CombatStats{MaxHP: 30, HP: 0, Defense: 2, Power: 5})

	killed, died := DeleteTheDead(ctx)
	if len(killed) != 1 || killed[0] != "Orc" {
		t.Fatalf("killed = %v; want [Orc]", killed)
	}
	if !died {
		t.Fatal("first sweep should report the player's death")
	}
	if ctx.World.Alive(orc) {
		t.Error("dead orc should be destroyed")
	}
	if !ctx.World.Alive(goblin) || !ctx.World.Alive(ctx.Player) {
		t.Error("living goblin and the player must survive the sweep")
	}
	logged := len(ctx.Log.Entries())

	killed, died = DeleteTheDead(ctx)
	if len(killed) != 0 || died {
		t.Fatalf("second sweep changed something: killed=%v died=%v", killed, died)
	}
	if len(ctx.Log.Entries()) != logged {
		t.Error("second sweep must not log again")
	}
}
