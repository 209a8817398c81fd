package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"stardodge/game"
	"stardodge/protocol"
	"stardodge/room"
)

const (
	readLimit = 1 << 20 // 1MB
	pongWait  = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and runs the connection against a room:
// hello handshake, welcome reply, then the input read loop until the
// client goes away.
func ServeWS(w http.ResponseWriter, req *http.Request, r *room.Room, log zerolog.Logger) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	conn := NewConn(ws)
	defer conn.Close()

	hello, err := readHello(ws)
	if err != nil {
		log.Warn().Err(err).Msg("handshake failed")
		return
	}

	reply := make(chan room.JoinResult, 1)
	select {
	case r.Inbox <- room.Join{Conn: conn, Name: hello.Name, Reply: reply}:
	case <-r.Done():
		log.Warn().Msg("room closed before join")
		return
	}

	var res room.JoinResult
	select {
	case res = <-reply:
	case <-r.Done():
		log.Warn().Msg("room closed during join")
		return
	}

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		PlayerID: res.PlayerID,
		TickHz:   r.TickHz(),
		ArenaW:   game.ArenaWidth,
		ArenaH:   game.ArenaHeight,
	})
	if err != nil {
		log.Error().Err(err).Msg("encode welcome")
		return
	}
	if err := conn.Send(protocol.MsgWelcome, welcome); err != nil {
		return
	}

	readLoop(ws, r, res.PlayerID, log)
	select {
	case r.Inbox <- room.Leave{PlayerID: res.PlayerID}:
	case <-r.Done():
	}
}

func readHello(ws *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := ws.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, fmt.Errorf("expected hello, got %q", env.T)
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func readLoop(ws *websocket.Conn, r *room.Room, playerID string, log zerolog.Logger) {
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("player", playerID).Msg("read loop ended")
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		switch env.T {
		case protocol.MsgInput:
			in, err := protocol.DecodePayload[protocol.Input](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Input{PlayerID: playerID, Keys: in.Keys}
		case protocol.MsgRestart:
			r.Inbox <- room.Restart{PlayerID: playerID}
		}
	}
}
