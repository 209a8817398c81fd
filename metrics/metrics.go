package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stardodge",
		Name:      "ticks_total",
		Help:      "Simulation ticks stepped across all rooms.",
	})

	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stardodge",
		Name:      "active_rooms",
		Help:      "Rooms currently running.",
	})

	ConnectedPlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stardodge",
		Name:      "connected_players",
		Help:      "Players currently connected.",
	})

	DroppedSends = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stardodge",
		Name:      "dropped_unreliable_sends_total",
		Help:      "Unreliable messages dropped under backpressure.",
	})

	GamesOver = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stardodge",
		Name:      "games_over_total",
		Help:      "Runs that ended at zero lives.",
	})
)
