package game

import "math/rand"

// Internal truth authoritative game state, one per player.

type State struct {
	Tick            int
	Ship            Ship
	Score           float64
	Lives           int
	InvincibleTicks int
	Over            bool
	Stars           []Star
	Asteroids       []Asteroid

	rng *rand.Rand
}

type Ship struct {
	X, Y, VX, VY float64
}

// Star is a background particle scrolling downward for parallax.
// Shade is a palette index; dimmer stars scroll slower.
type Star struct {
	X, Y  float64
	Speed float64
	Shade int
}

type Asteroid struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Sprite int
}

// Input is the per-tick input record resolved from bindings.
type Input struct {
	Ax, Ay  float64 // -1..1 movement
	Boost   bool
	Restart bool
}

// NewState seeds a fresh run. The seed makes star/asteroid layout
// reproducible in tests.
func NewState(seed int64) *State {
	s := &State{rng: rand.New(rand.NewSource(seed))}
	Reset(s)
	return s
}

// Reset is reset-on-restart: everything respawns, nothing carries over.
func Reset(s *State) {
	s.Score = 0
	s.Lives = InitialLives
	s.InvincibleTicks = 0
	s.Over = false
	s.Ship = Ship{X: ArenaWidth / 2, Y: ArenaHeight - ShipSpawnMargin}

	s.Stars = s.Stars[:0]
	for i := 0; i < StarCount; i++ {
		s.Stars = append(s.Stars, spawnStar(s.rng))
	}

	s.Asteroids = s.Asteroids[:0]
	for i := 0; i < AsteroidCount; i++ {
		a := spawnAsteroid(s.rng)
		// initial field is scattered through the arena, not stacked above it
		a.Y = s.rng.Float64() * ArenaHeight * 0.6
		s.Asteroids = append(s.Asteroids, a)
	}
}

func spawnStar(rng *rand.Rand) Star {
	return Star{
		X:     rng.Float64() * ArenaWidth,
		Y:     rng.Float64() * ArenaHeight,
		Speed: StarMinSpeed + rng.Float64()*(StarMaxSpeed-StarMinSpeed),
		Shade: rng.Intn(StarShades),
	}
}

// spawnAsteroid places a fresh asteroid in the band above the arena so it
// drifts into view instead of popping in.
func spawnAsteroid(rng *rand.Rand) Asteroid {
	return Asteroid{
		X:      rng.Float64() * ArenaWidth,
		Y:      -rng.Float64() * SpawnBandHeight,
		VX:     (rng.Float64()*2 - 1) * AsteroidDriftMax,
		VY:     AsteroidMinFall + rng.Float64()*(AsteroidMaxFall-AsteroidMinFall),
		Size:   AsteroidMinSize + rng.Float64()*(AsteroidMaxSize-AsteroidMinSize),
		Sprite: rng.Intn(AsteroidSprites),
	}
}
