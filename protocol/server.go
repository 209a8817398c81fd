package protocol

// Messages going out to the client.

type Welcome struct {
	PlayerID string  `json:"playerId"`
	TickHz   int     `json:"tickHz"`
	ArenaW   float64 `json:"arenaW"`
	ArenaH   float64 `json:"arenaH"`
}

type State struct {
	Tick       int                `json:"tick"`
	Ship       ShipSnapshot       `json:"ship"`
	Score      int                `json:"score"`
	Lives      int                `json:"lives"`
	Invincible int                `json:"invincible,omitempty"`
	Over       bool               `json:"over,omitempty"`
	Stars      []StarSnapshot     `json:"stars,omitempty"`
	Asteroids  []AsteroidSnapshot `json:"asteroids,omitempty"`
	Orders     []OrderSnapshot    `json:"orders,omitempty"`
}

type ShipSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StarSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Shade int     `json:"shade"`
}

type AsteroidSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Sprite int     `json:"sprite"`
}

// OrderSnapshot mirrors one built draw order.
type OrderSnapshot struct {
	Layer  uint8   `json:"layer"`
	Sprite string  `json:"sprite,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  int     `json:"color,omitempty"`
	Text   string  `json:"text,omitempty"`
}
