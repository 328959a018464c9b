package stream

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/middleware"
)

// ErrMsgInvalidProfileID is returned before the upgrade for malformed ids
const ErrMsgInvalidProfileID = "Invalid profile id"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Handler upgrades GET /profiles/{profileID}/stream to a websocket. The first
// frame is the current snapshot; later frames follow every event of the profile.
// @Summary Profile state stream
// @Description WebSocket that pushes a profile snapshot on connect and after every change
// @Tags profile
// @Param profileID path string true "Profile id"
// @Success 101 {object} Message
// @Failure 400 {string} string
// @Router /api/v1/profiles/{profileID}/stream [get]
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, middleware.URLParamProfileID)
		if !domain.ValidProfileID(profileID) {
			http.Error(w, ErrMsgInvalidProfileID, http.StatusBadRequest)
			return
		}

		log := middleware.Logger(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		client := newClient(h, conn, profileID)
		if data, ok := h.encodeSnapshot(r.Context(), profileID, ""); ok {
			client.send <- data
		}

		select {
		case h.register <- client:
		case <-h.shutdown:
			_ = conn.Close()
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.id)

		go client.writePump()
		client.readPump()

		log.Info(LogMsgClientDisconnected, "client_id", client.id)
	}
}
