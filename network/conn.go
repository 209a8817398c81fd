package network

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"stardodge/metrics"
	"stardodge/protocol"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 25 * time.Second

	reliableBuffer   = 16
	unreliableBuffer = 8
)

// Conn wraps a websocket with two send paths. Reliable sends queue in
// order and block the caller under backpressure; unreliable sends drop the
// oldest pending message instead of stalling the tick loop.
type Conn struct {
	ws   *websocket.Conn
	rel  chan []byte
	unr  chan []byte
	done chan struct{}
	once sync.Once
}

func NewConn(ws *websocket.Conn) *Conn {
	c := &Conn{
		ws:   ws,
		rel:  make(chan []byte, reliableBuffer),
		unr:  make(chan []byte, unreliableBuffer),
		done: make(chan struct{}),
	}
	go c.writePump()
	return c
}

// Send routes by the message type's delivery class.
func (c *Conn) Send(t string, b []byte) error {
	if protocol.DeliveryOf(t) == protocol.Reliable {
		return c.SendReliable(b)
	}
	return c.SendUnreliable(b)
}

func (c *Conn) SendReliable(b []byte) error {
	select {
	case c.rel <- b:
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed")
	}
}

func (c *Conn) SendUnreliable(b []byte) error {
	select {
	case <-c.done:
		return fmt.Errorf("connection closed")
	case c.unr <- b:
		return nil
	default:
	}
	// Full: evict the oldest snapshot, it is superseded anyway.
	select {
	case <-c.unr:
		metrics.DroppedSends.Inc()
	default:
	}
	select {
	case c.unr <- b:
	default:
		metrics.DroppedSends.Inc()
	}
	return nil
}

func (c *Conn) Close() error {
	c.once.Do(func() { close(c.done) })
	return c.ws.Close()
}

func (c *Conn) writePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		// Drain reliable messages first so the handshake never queues
		// behind a snapshot burst.
		select {
		case b := <-c.rel:
			if !c.write(websocket.TextMessage, b) {
				return
			}
			continue
		default:
		}

		select {
		case <-c.done:
			return
		case b := <-c.rel:
			if !c.write(websocket.TextMessage, b) {
				return
			}
		case b := <-c.unr:
			if !c.write(websocket.TextMessage, b) {
				return
			}
		case <-ping.C:
			if !c.write(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

func (c *Conn) write(msgType int, b []byte) bool {
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.ws.WriteMessage(msgType, b); err != nil {
		_ = c.Close()
		return false
	}
	return true
}
