package game

const (
	ArenaWidth  = 240.0
	ArenaHeight = 320.0

	ShipRadius      = 6.0
	ShipSpawnMargin = 40.0 // spawn this far above the bottom edge
	Deadzone        = 0.08
	AccelPerTick    = 0.55 // base acceleration
	BoostMult       = 1.9  // boost = this × base
	ShipDampingDiv  = 1.12
	MaxSpeedNormal  = 4.5
	MaxSpeedBoost   = 8.5 // fast enough to thread a tight cluster

	StarCount    = 48
	StarShades   = 3   // palette indices for parallax depth
	StarMinSpeed = 0.4 // dim, far layer
	StarMaxSpeed = 2.2 // bright, near layer

	AsteroidCount    = 12 // fixed-size field, recycled not removed
	AsteroidSprites  = 4
	AsteroidMinSize  = 4.0
	AsteroidMaxSize  = 14.0
	AsteroidMinFall  = 1.0
	AsteroidMaxFall  = 3.4
	AsteroidDriftMax = 0.8
	SpawnBandHeight  = 80.0 // respawn band above the arena top

	InitialLives         = 3
	InvincibilityWindow  = 120 // ticks of grace after a hit (3s at SimTickHz)
	InvincibleBlinkTicks = 8   // ship blinks at this period while invincible
	ScorePerTick         = 0.05
	ScoreDodgeBonus      = 5.0 // awarded when an asteroid falls off-screen unhit
)
