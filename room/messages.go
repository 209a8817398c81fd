package room

// Conn is the transport a room sends through. Reliable sends block until
// written; unreliable sends may be dropped under backpressure.
type Conn interface {
	SendReliable([]byte) error
	SendUnreliable([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
}

// Input: latest pressed keys for a player
type Input struct {
	PlayerID string
	Keys     []string
}

// Restart: player asked for a fresh run after game over
type Restart struct {
	PlayerID string
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}
