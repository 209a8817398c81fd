package game

import "testing"

func TestStepMovesShipAndAdvancesTick(t *testing.T) {
	s := NewState(1)
	s.Asteroids = nil // keep collisions out of this test
	x0 := s.Ship.X

	Step(s, Input{Ax: 1})
	if s.Tick != 1 {
		t.Fatalf("tick after 1 step = %d, want 1", s.Tick)
	}
	x1 := s.Ship.X
	if x1 <= x0 {
		t.Fatalf("expected x to increase after 1 step, got %f -> %f", x0, x1)
	}

	for i := 0; i < 4; i++ {
		Step(s, Input{Ax: 1})
	}
	if s.Tick != 5 {
		t.Fatalf("tick after 5 steps = %d, want 5", s.Tick)
	}
	if s.Ship.X <= x1 {
		t.Fatalf("expected x to keep increasing: x1=%f x2=%f", x1, s.Ship.X)
	}
}

func TestShipStaysInsideArena(t *testing.T) {
	s := NewState(2)
	s.Asteroids = nil

	for i := 0; i < 400; i++ {
		Step(s, Input{Ax: 1, Ay: 1, Boost: true})
	}
	if s.Ship.X > ArenaWidth-ShipRadius || s.Ship.Y > ArenaHeight-ShipRadius {
		t.Fatalf("ship escaped arena: x=%f y=%f", s.Ship.X, s.Ship.Y)
	}

	for i := 0; i < 400; i++ {
		Step(s, Input{Ax: -1, Ay: -1, Boost: true})
	}
	if s.Ship.X < ShipRadius || s.Ship.Y < ShipRadius {
		t.Fatalf("ship escaped arena: x=%f y=%f", s.Ship.X, s.Ship.Y)
	}
}

func TestCollisionCostsLifeAndGrantsGrace(t *testing.T) {
	s := NewState(3)
	s.Asteroids = []Asteroid{{X: s.Ship.X, Y: s.Ship.Y, Size: 10}}

	Step(s, Input{})
	if s.Lives != InitialLives-1 {
		t.Fatalf("lives after hit = %d, want %d", s.Lives, InitialLives-1)
	}
	if s.InvincibleTicks == 0 {
		t.Fatalf("expected invincibility window after hit")
	}

	// Still overlapping, but the grace window holds.
	Step(s, Input{})
	if s.Lives != InitialLives-1 {
		t.Fatalf("hit landed during invincibility: lives=%d", s.Lives)
	}
}

func TestLivesNeverNegative(t *testing.T) {
	s := NewState(4)
	s.Asteroids = []Asteroid{{X: s.Ship.X, Y: s.Ship.Y, Size: 10}}

	for i := 0; i < InitialLives+3; i++ {
		s.InvincibleTicks = 0
		Step(s, Input{})
	}
	if s.Lives != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives)
	}
	if !s.Over {
		t.Fatalf("expected game over at 0 lives")
	}
}

func TestNoScoreAccrualOnFatalTick(t *testing.T) {
	s := NewState(10)
	s.Lives = 1
	s.Asteroids = []Asteroid{{X: s.Ship.X, Y: s.Ship.Y, Size: 10}}
	before := s.Score

	Step(s, Input{})
	if !s.Over {
		t.Fatalf("expected fatal hit to end the run")
	}
	if s.Score != before {
		t.Fatalf("score accrued on the tick the run ended: %f -> %f", before, s.Score)
	}
}

func TestAsteroidRecyclesWhenOffScreen(t *testing.T) {
	s := NewState(5)
	s.Ship.X = 0
	s.Ship.Y = 0
	s.Asteroids = []Asteroid{{X: ArenaWidth / 2, Y: ArenaHeight + 30, Size: 8, VY: 1}}
	before := s.Score

	Step(s, Input{})

	a := s.Asteroids[0]
	if a.Y > 0 {
		t.Fatalf("recycled asteroid should respawn above the arena, got y=%f", a.Y)
	}
	if s.Score <= before {
		t.Fatalf("expected dodge bonus, score %f -> %f", before, s.Score)
	}
	if len(s.Asteroids) != 1 {
		t.Fatalf("asteroid count changed on recycle: %d", len(s.Asteroids))
	}
}

func TestInvincibilityCountsDownToZero(t *testing.T) {
	s := NewState(6)
	s.Asteroids = nil
	s.InvincibleTicks = 3

	for i := 0; i < 5; i++ {
		Step(s, Input{})
	}
	if s.InvincibleTicks != 0 {
		t.Fatalf("invincibility ticks = %d, want 0", s.InvincibleTicks)
	}
}

func TestScoreAccruesWhileAlive(t *testing.T) {
	s := NewState(7)
	s.Asteroids = nil

	for i := 0; i < 10; i++ {
		Step(s, Input{})
	}
	if s.Score <= 0 {
		t.Fatalf("expected passive score accrual, got %f", s.Score)
	}
}

func TestRestartResetsRun(t *testing.T) {
	s := NewState(8)
	s.Over = true
	s.Lives = 0
	s.Score = 123

	// Inputs other than restart are ignored while over.
	ship := s.Ship
	Step(s, Input{Ax: 1})
	if s.Ship != ship || !s.Over {
		t.Fatalf("state changed while over without restart")
	}

	Step(s, Input{Restart: true})
	if s.Over {
		t.Fatalf("expected restart to clear game over")
	}
	if s.Lives != InitialLives || s.Score != 0 || s.InvincibleTicks != 0 {
		t.Fatalf("restart did not reset: lives=%d score=%f inv=%d", s.Lives, s.Score, s.InvincibleTicks)
	}
	if len(s.Asteroids) != AsteroidCount || len(s.Stars) != StarCount {
		t.Fatalf("restart did not respawn field: %d asteroids, %d stars", len(s.Asteroids), len(s.Stars))
	}
}

func TestStarsWrapToTop(t *testing.T) {
	s := NewState(9)
	s.Asteroids = nil
	s.Stars = []Star{{X: 10, Y: ArenaHeight - 0.1, Speed: 2}}

	Step(s, Input{})
	if s.Stars[0].Y > ArenaHeight {
		t.Fatalf("star should wrap, got y=%f", s.Stars[0].Y)
	}
}
