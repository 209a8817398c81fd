package render

import (
	"fmt"

	"stardodge/game"
)

// Sprite names expected in the sheet manifest.
const (
	SpriteShip = "ship"
	SpriteStar = "star"
)

// AsteroidSprite names the sheet cell for an asteroid variant.
func AsteroidSprite(variant int) string {
	return fmt.Sprintf("asteroid.%d", variant)
}

// Compose is a direct pass-through of computed game positions into draw
// orders: stars, then asteroids, then the ship, then the HUD.
func Compose(d *Display, s *game.State) *Frame {
	var f Frame

	for _, st := range s.Stars {
		f.Draw(Order{Layer: LayerStars, Sprite: SpriteStar, X: st.X, Y: st.Y, Color: st.Shade})
	}

	for _, a := range s.Asteroids {
		f.Draw(Order{Layer: LayerAsteroids, Sprite: AsteroidSprite(a.Sprite), X: a.X, Y: a.Y})
	}

	if shipVisible(s) {
		f.Draw(Order{Layer: LayerShip, Sprite: SpriteShip, X: s.Ship.X, Y: s.Ship.Y})
	}

	f.Draw(Order{Layer: LayerHUD, X: 4, Y: 4, Text: fmt.Sprintf("SCORE %06d", int(s.Score))})
	f.Draw(Order{Layer: LayerHUD, X: 4, Y: 12, Text: fmt.Sprintf("LIVES %d", s.Lives)})
	if s.Over {
		f.Draw(Order{Layer: LayerHUD, X: game.ArenaWidth / 2, Y: game.ArenaHeight / 2, Text: "GAME OVER"})
	}

	return &f
}

// shipVisible blinks the ship while invincible so the grace window reads
// on screen.
func shipVisible(s *game.State) bool {
	if s.Over {
		return false
	}
	if s.InvincibleTicks == 0 {
		return true
	}
	return (s.InvincibleTicks/game.InvincibleBlinkTicks)%2 == 0
}
