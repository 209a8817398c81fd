package game

import "math"

// Step advances one simulation tick. It is a straight sequential pass:
// ship movement, star scroll, asteroid motion and recycling, collision
// scan, invincibility countdown, score accrual.
func Step(s *State, in Input) {
	s.Tick++

	if s.Over {
		if in.Restart {
			Reset(s)
		}
		return
	}

	stepShip(s, in)
	stepStars(s)
	stepAsteroids(s)
	checkCollisions(s)
	if s.Over {
		// The run ended this tick; the player did not survive it.
		return
	}

	if s.InvincibleTicks > 0 {
		s.InvincibleTicks--
	}
	s.Score += ScorePerTick
}

func stepShip(s *State, in Input) {
	p := &s.Ship

	mag := math.Hypot(in.Ax, in.Ay)
	if mag > Deadzone {
		nx := in.Ax / mag
		ny := in.Ay / mag
		accel := AccelPerTick
		if in.Boost {
			accel *= BoostMult
		}
		p.VX += nx * accel
		p.VY += ny * accel
	}

	p.VX /= ShipDampingDiv
	p.VY /= ShipDampingDiv

	max := MaxSpeedNormal
	if in.Boost {
		max = MaxSpeedBoost
	}
	speed := math.Hypot(p.VX, p.VY)
	if speed > max {
		scale := max / speed
		p.VX *= scale
		p.VY *= scale
	}

	p.X += p.VX
	p.Y += p.VY

	// Ship never leaves the arena: clamp and kill velocity into the wall.
	if p.X < ShipRadius {
		p.X = ShipRadius
		p.VX = 0
	}
	if p.X > ArenaWidth-ShipRadius {
		p.X = ArenaWidth - ShipRadius
		p.VX = 0
	}
	if p.Y < ShipRadius {
		p.Y = ShipRadius
		p.VY = 0
	}
	if p.Y > ArenaHeight-ShipRadius {
		p.Y = ArenaHeight - ShipRadius
		p.VY = 0
	}
}

func stepStars(s *State) {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Y += st.Speed
		if st.Y > ArenaHeight {
			st.Y -= ArenaHeight
			st.X = s.rng.Float64() * ArenaWidth
		}
	}
}

func stepAsteroids(s *State) {
	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		a.X += a.VX
		a.Y += a.VY

		// Sideways drift bounces off the arena edges.
		if a.X < -a.Size {
			a.X = -a.Size
			a.VX = -a.VX
		}
		if a.X > ArenaWidth+a.Size {
			a.X = ArenaWidth + a.Size
			a.VX = -a.VX
		}

		// Off the bottom: the dodge succeeded, recycle into the spawn band.
		if a.Y > ArenaHeight+a.Size {
			s.Score += ScoreDodgeBonus
			s.Asteroids[i] = spawnAsteroid(s.rng)
		}
	}
}

func checkCollisions(s *State) {
	if s.InvincibleTicks > 0 {
		return
	}
	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		dx := a.X - s.Ship.X
		dy := a.Y - s.Ship.Y
		r := a.Size + ShipRadius
		if dx*dx+dy*dy >= r*r {
			continue
		}
		s.Lives--
		if s.Lives <= 0 {
			s.Lives = 0
			s.Over = true
			return
		}
		s.InvincibleTicks = InvincibilityWindow
		return // one hit per tick at most
	}
}
