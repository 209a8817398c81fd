package render

import (
	"testing"

	"stardodge/game"
)

func TestComposeOrdersGroupedByLayer(t *testing.T) {
	s := game.NewState(1)
	d := NewDisplay("space")

	orders := Compose(d, s).Build()
	if len(orders) == 0 {
		t.Fatalf("expected orders for a live state")
	}

	last := LayerStars
	for _, o := range orders {
		if o.Layer < last {
			t.Fatalf("orders not grouped back-to-front: %v after %v", o.Layer, last)
		}
		last = o.Layer
	}
}

func TestComposeCountsMatchState(t *testing.T) {
	s := game.NewState(2)
	d := NewDisplay("space")

	var stars, asteroids, ships int
	for _, o := range Compose(d, s).Build() {
		switch o.Layer {
		case LayerStars:
			stars++
		case LayerAsteroids:
			asteroids++
		case LayerShip:
			ships++
		}
	}
	if stars != len(s.Stars) {
		t.Fatalf("star orders = %d, want %d", stars, len(s.Stars))
	}
	if asteroids != len(s.Asteroids) {
		t.Fatalf("asteroid orders = %d, want %d", asteroids, len(s.Asteroids))
	}
	if ships != 1 {
		t.Fatalf("ship orders = %d, want 1", ships)
	}
}

func TestComposeBlinksShipDuringGrace(t *testing.T) {
	s := game.NewState(3)
	d := NewDisplay("space")

	hasShip := func() bool {
		for _, o := range Compose(d, s).Build() {
			if o.Layer == LayerShip {
				return true
			}
		}
		return false
	}

	s.InvincibleTicks = game.InvincibleBlinkTicks // odd phase: hidden
	if hasShip() {
		t.Fatalf("ship drawn during hidden blink phase")
	}
	s.InvincibleTicks = 0
	if !hasShip() {
		t.Fatalf("ship missing with no invincibility")
	}
}

func TestComposeHidesShipWhenOver(t *testing.T) {
	s := game.NewState(4)
	s.Over = true
	d := NewDisplay("space")

	sawGameOver := false
	for _, o := range Compose(d, s).Build() {
		if o.Layer == LayerShip {
			t.Fatalf("ship drawn after game over")
		}
		if o.Layer == LayerHUD && o.Text == "GAME OVER" {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Fatalf("expected game over banner on HUD layer")
	}
}
