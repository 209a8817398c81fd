// Package api exposes the HTTP surface: room listing and creation, the
// websocket mount, health and metrics.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"stardodge/network"
	"stardodge/room"
)

func NewRouter(rm *room.Manager, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	// Demo posture: any origin may join. Lock this down in prod.
	r.Use(cors.Default())
	r.Use(requestLog(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, rm.ListRooms())
	})
	r.POST("/rooms", func(c *gin.Context) {
		code, err := rm.CreateRoom()
		if err != nil {
			log.Error().Err(err).Msg("create room")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create room"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"code": code})
	})

	r.GET("/ws/:code", func(c *gin.Context) {
		target, err := rm.GetOrCreateRoom(c.Param("code"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		network.ServeWS(c.Writer, c.Request, target, log)
	})

	return r
}

func requestLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("http request")
	}
}
