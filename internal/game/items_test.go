package game

import (
	"testing"
)

func TestHeartGrantsLife(t *testing.T) {
	g := startGame(7, "3:3:1:GGGSSSGGG")
	gained := -1
	g.OnLifeGained(func(lives int) { gained = lives })

	g.board.SetItem(2, 1, ItemHeart)
	g.player.MoveTo(g, 1, 2)

	if g.lives != 4 {
		t.Errorf("Expected 4 lives after a heart, got %d", g.lives)
	}
	if gained != 4 {
		t.Errorf("Life gained event should carry 4, got %d", gained)
	}
	if g.board.Item(2, 1) != ItemNone {
		t.Error("The heart should be consumed")
	}
}

func TestStarWindow(t *testing.T) {
	g := startGame(11, "3:3:1:GGGSSSGGG")

	g.board.SetItem(2, 1, ItemStar)
	g.player.MoveTo(g, 1, 2)

	if !g.player.Indestructible {
		t.Fatal("A star should make the player indestructible")
	}
	if g.player.Sprite != SpriteStar {
		t.Errorf("Expected the star form, got %s", g.player.Sprite)
	}
	if len(g.tasks) != 1 {
		t.Fatalf("Expected one pending reversal, got %d", len(g.tasks))
	}

	g.Step(0.5)
	g.Step(0.4)
	if !g.player.Indestructible {
		t.Fatal("The star expired early")
	}

	g.Step(0.2)
	if g.player.Indestructible {
		t.Error("The star should expire after one second")
	}
	if g.player.Sprite != SpriteHopper {
		t.Errorf("The sprite should revert to the chosen identity, got %s", g.player.Sprite)
	}
}

func TestStarDoesNotStack(t *testing.T) {
	g := startGame(13, "3:3:1:GGGSSSGGG")

	g.board.SetItem(2, 0, ItemStar)
	g.board.SetItem(2, 1, ItemStar)
	g.player.MoveTo(g, 0, 2)
	g.player.MoveTo(g, 1, 2)

	if len(g.tasks) != 1 {
		t.Errorf("A second star should not queue another reversal, got %d tasks", len(g.tasks))
	}
	if g.board.Item(2, 1) != ItemNone {
		t.Error("The second star should still be consumed")
	}

	g.Step(1.1)
	if g.player.Indestructible {
		t.Error("The star should expire once and stay expired")
	}
	if len(g.tasks) != 0 {
		t.Errorf("Expected no pending tasks after expiry, got %d", len(g.tasks))
	}
}

func TestStarSurvivesBeingHit(t *testing.T) {
	g := startGame(27, "3:3:1:GGGSSSGGG")

	g.board.SetItem(2, 1, ItemStar)
	g.player.MoveTo(g, 1, 2)

	// Park an enemy on the player's tile. While the star is up this
	// must not cost a life.
	g.player.Y = 1
	e := g.enemies[0]
	e.X, e.Speed = 1, 0

	g.Step(0.1)
	if g.lives != 3 {
		t.Errorf("An indestructible player should not lose a life, got %d", g.lives)
	}

	g.Step(1.0)
	if g.lives != 2 {
		t.Errorf("After the star expires the same overlap should hit, got %d lives", g.lives)
	}
}

func TestKeyAdvancesLevel(t *testing.T) {
	g := startGame(17,
		"3:3:1:GGGSSSGGG",
		"3:3:1:GGGSSSGGG:nhnnnnnnn",
	)
	var cleared []int
	g.OnLevelCleared(func(next int) { cleared = append(cleared, next) })

	old := g.board
	g.lives = 1
	g.board.SetItem(2, 1, ItemKey)
	g.player.MoveTo(g, 1, 2)

	if g.level != 1 {
		t.Fatalf("Expected level 1 after the key, got %d", g.level)
	}
	if g.board == old {
		t.Error("The key should install a fresh board")
	}
	if old.Item(2, 1) != ItemNone {
		t.Error("The key should be removed from the board it was collected on")
	}
	if g.board.Item(0, 1) != ItemHeart {
		t.Error("The next level's items should be untouched by the pickup")
	}
	if g.lives != 3 {
		t.Errorf("Lives should refill on the level change, got %d", g.lives)
	}
	if g.player.Y != 2 {
		t.Errorf("Player should respawn on the bottom row, got %d", g.player.Y)
	}
	if min, max := g.SpeedBounds(); min != 3 || max != 5 {
		t.Errorf("Speed bounds should ratchet to [3,5], got [%d,%d]", min, max)
	}
	if len(cleared) != 1 || cleared[0] != 1 {
		t.Errorf("Expected one cleared event carrying 1, got %v", cleared)
	}
}

func TestRockHardensWater(t *testing.T) {
	g := startGame(19, "3:3:1:WWWSSSGGG")

	g.board.SetItem(2, 1, ItemRock)
	g.player.MoveTo(g, 1, 2)

	for col := 0; col < 3; col++ {
		if g.board.Tile(0, col) != TileStone {
			t.Errorf("Water at (0,%d) should harden to stone", col)
		}
	}

	g.Step(0.5)
	if g.board.Tile(0, 0) != TileStone {
		t.Error("The stone should persist through the window")
	}

	g.Step(0.6)
	for col := 0; col < 3; col++ {
		if g.board.Tile(0, col) != TileWater {
			t.Errorf("Tile (0,%d) should revert to water", col)
		}
	}
	if g.board.Tile(1, 0) != TileStone {
		t.Error("Authored stone should never revert")
	}
}

func TestBlueGemSlowsEnemies(t *testing.T) {
	g := startGame(23, "3:3:1:GGGSSSGGG")
	for _, e := range g.enemies {
		e.Speed = 3.0
	}

	g.board.SetItem(2, 1, ItemBlueGem)
	g.player.MoveTo(g, 1, 2)

	for _, e := range g.enemies {
		if e.Speed != 1.0 {
			t.Errorf("Enemy speed should drop to a third, got %v", e.Speed)
		}
	}

	g.Step(1.1)
	for _, e := range g.enemies {
		if e.Speed != 3.0 {
			t.Errorf("Enemy speed should be restored, got %v", e.Speed)
		}
	}
}

func TestGreenGemFreezesEnemies(t *testing.T) {
	g := startGame(29, "3:3:1:GGGSSSGGG")
	e := g.enemies[0]
	e.Speed = 2.5

	g.board.SetItem(2, 1, ItemGreenGem)
	g.player.MoveTo(g, 1, 2)

	if e.Speed != 0 {
		t.Fatalf("The enemy should freeze, got speed %v", e.Speed)
	}
	x := e.X
	g.Step(0.5)
	if e.X != x {
		t.Error("A frozen enemy should not move")
	}

	g.Step(0.6)
	if e.Speed != 2.5 {
		t.Errorf("Enemy speed should be restored to 2.5, got %v", e.Speed)
	}
}

func TestOrangeGemHasNoEffect(t *testing.T) {
	g := startGame(31, "3:3:1:GGGSSSGGG")
	lives := g.lives

	g.board.SetItem(2, 1, ItemOrangeGem)
	g.player.MoveTo(g, 1, 2)

	if g.lives != lives {
		t.Errorf("An orange gem should not change lives, got %d", g.lives)
	}
	if len(g.tasks) != 0 {
		t.Errorf("An orange gem should not schedule work, got %d tasks", len(g.tasks))
	}
	if g.board.Item(2, 1) != ItemNone {
		t.Error("An effectless item should still be consumed")
	}
}
