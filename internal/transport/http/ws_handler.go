package http

import (
	"net/http"

	"hackquest-service/internal/app"
	"hackquest-service/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// LeaderboardStream pushes a leaderboard snapshot to websocket clients
// whenever scores change.
type LeaderboardStream struct {
	service  *app.Service
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

func NewLeaderboardStream(service *app.Service, logger *logrus.Logger) *LeaderboardStream {
	return &LeaderboardStream{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage struct {
	Type    string             `json:"type"`
	Payload domain.Leaderboard `json:"payload"`
}

// ServeWS upgrades the request and streams snapshots until the client
// disconnects. The first message is the current board.
func (h *LeaderboardStream) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("ws upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := h.service.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(outboundMessage{Type: "leaderboard", Payload: update}); err != nil {
				h.logger.WithError(err).Debug("ws write failed")
				return
			}
		case <-closed:
			return
		}
	}
}
