package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
}

type Input struct {
	Keys []string `json:"keys"` // currently pressed key identifiers
}

// Restart asks for a fresh run after game over. Carried reliably; a
// dropped restart would leave the player staring at the banner.
type Restart struct{}
