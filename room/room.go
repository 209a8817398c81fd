package room

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"stardodge/game"
	"stardodge/input"
	"stardodge/metrics"
	"stardodge/protocol"
	"stardodge/render"
	"stardodge/session"
)

// Room hosts one game per joined player. Each player dodges their own
// asteroid field; everyone shares the room's booted session (display,
// bindings, assets).
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	sess           *session.Session
	states         map[string]*game.State
	latestInputs   map[string]game.Input
	clients        map[string]Conn
	nextID         int
	seed           int64
	quit           chan struct{}
	log            zerolog.Logger

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when last player leaves
}

// New boots the room against the session manager. Ensure reuses the live
// session when the options are unchanged, so opening more rooms does not
// reload assets.
func New(sm *session.Manager, opts session.Options, log zerolog.Logger) (*Room, error) {
	sess, err := sm.Ensure(opts)
	if err != nil {
		return nil, fmt.Errorf("room session: %w", err)
	}

	broadcastEvery := opts.TickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         opts.TickHz,
		broadcastEvery: broadcastEvery,
		sess:           sess,
		states:         make(map[string]*game.State),
		latestInputs:   make(map[string]game.Input),
		clients:        make(map[string]Conn),
		nextID:         1,
		seed:           seed,
		quit:           make(chan struct{}),
		log:            log.With().Str("component", "room").Logger(),
	}, nil
}

func (r *Room) Stop() {
	close(r.quit)
}

// Done is closed when the room shuts down. Callers waiting on a Join
// reply must select on it: a join sent to a stopped room is never
// answered.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

// TickHz is the room's simulation rate, advertised in the welcome.
func (r *Room) TickHz() int {
	return r.tickHz
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.step()
		}
	}
}

func (r *Room) step() {
	metrics.TicksTotal.Inc()
	broadcast := false
	for id, st := range r.states {
		wasOver := st.Over
		game.Step(st, r.latestInputs[id])
		if st.Over && !wasOver {
			metrics.GamesOver.Inc()
			r.log.Info().Str("room", r.Code).Str("player", id).Int("score", int(st.Score)).Msg("game over")
		}
		// Restart is an edge, not a level: clear it once consumed.
		in := r.latestInputs[id]
		in.Restart = false
		r.latestInputs[id] = in

		if st.Tick%r.broadcastEvery == 0 {
			broadcast = true
		}
	}
	if broadcast {
		r.broadcastStates()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		idNum := r.nextID
		playerID := fmt.Sprintf("p%d", idNum)
		r.nextID++
		r.clients[playerID] = c.Conn
		r.latestInputs[playerID] = game.Input{}
		r.states[playerID] = game.NewState(r.seed + int64(idNum))
		metrics.ConnectedPlayers.Inc()
		r.log.Info().Str("room", r.Code).Str("player", playerID).Str("name", c.Name).Msg("player joined")
		c.Reply <- JoinResult{PlayerID: playerID}
	case Input:
		if _, ok := r.clients[c.PlayerID]; !ok {
			return
		}
		keys := make([]input.Key, len(c.Keys))
		for i, k := range c.Keys {
			keys[i] = input.Key(k)
		}
		in := r.sess.Bindings.Resolve(keys)
		// A held restart key only counts once; the edge is latched here
		// and cleared after the step that consumes it.
		prev := r.latestInputs[c.PlayerID]
		in.Restart = in.Restart || prev.Restart
		r.latestInputs[c.PlayerID] = in
	case Restart:
		if in, ok := r.latestInputs[c.PlayerID]; ok {
			in.Restart = true
			r.latestInputs[c.PlayerID] = in
		}
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	delete(r.latestInputs, playerID)
	delete(r.states, playerID)
	if ok {
		_ = c.Close()
		delete(r.clients, playerID)
		metrics.ConnectedPlayers.Dec()
		r.log.Info().Str("room", r.Code).Str("player", playerID).Msg("player left")
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removePlayer(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
		metrics.ConnectedPlayers.Dec()
	}
	delete(r.clients, playerID)
	delete(r.latestInputs, playerID)
	delete(r.states, playerID)
}

func (r *Room) broadcastStates() {
	var failed []string
	for id, c := range r.clients {
		st, ok := r.states[id]
		if !ok {
			continue
		}
		b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot(st))
		if err != nil {
			continue
		}
		if err := send(c, protocol.MsgState, b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removePlayer(id)
	}
}

// send routes through the message type's delivery class.
func send(c Conn, t string, b []byte) error {
	if protocol.DeliveryOf(t) == protocol.Reliable {
		return c.SendReliable(b)
	}
	return c.SendUnreliable(b)
}

func (r *Room) buildSnapshot(st *game.State) protocol.State {
	snapshot := protocol.State{
		Tick:       st.Tick,
		Ship:       protocol.ShipSnapshot{X: st.Ship.X, Y: st.Ship.Y},
		Score:      int(st.Score),
		Lives:      st.Lives,
		Invincible: st.InvincibleTicks,
		Over:       st.Over,
		Stars:      make([]protocol.StarSnapshot, 0, len(st.Stars)),
		Asteroids:  make([]protocol.AsteroidSnapshot, 0, len(st.Asteroids)),
	}
	for _, s := range st.Stars {
		snapshot.Stars = append(snapshot.Stars, protocol.StarSnapshot{X: s.X, Y: s.Y, Shade: s.Shade})
	}
	for _, a := range st.Asteroids {
		snapshot.Asteroids = append(snapshot.Asteroids, protocol.AsteroidSnapshot{X: a.X, Y: a.Y, Size: a.Size, Sprite: a.Sprite})
	}
	for _, o := range render.Compose(r.sess.Display, st).Build() {
		snapshot.Orders = append(snapshot.Orders, protocol.OrderSnapshot{
			Layer:  uint8(o.Layer),
			Sprite: o.Sprite,
			X:      o.X,
			Y:      o.Y,
			Color:  o.Color,
			Text:   o.Text,
		})
	}
	return snapshot
}
