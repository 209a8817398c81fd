package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgInput   = "input"
	MsgState   = "state"
	MsgRestart = "restart"
)

const (
	SimTickHz     = 40
	ClientInputHz = 40
	BroadcastHz   = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

// Delivery classes for the transport. Reliable messages must arrive in
// order; unreliable ones are latest-wins and may be dropped under
// backpressure.
type Delivery uint8

const (
	Unreliable Delivery = iota
	Reliable
)

// DeliveryOf classifies a message type. Handshake and restart are
// reliable; the per-tick input/state streams are not, a newer message
// supersedes a lost one.
func DeliveryOf(t string) Delivery {
	switch t {
	case MsgHello, MsgWelcome, MsgRestart:
		return Reliable
	default:
		return Unreliable
	}
}
