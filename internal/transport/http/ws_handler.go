package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/domain"
	"wellness-quiz-service/internal/logger"
)

// WSHandler streams a game's state over a websocket and accepts game commands.
type WSHandler struct {
	games    *app.GameService
	log      *logger.Logger
	tick     time.Duration
	upgrader websocket.Upgrader
}

func NewWSHandler(games *app.GameService, log *logger.Logger) *WSHandler {
	return &WSHandler{
		games: games,
		log:   log.With(zap.String("component", "ws")),
		tick:  time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Answer int `json:"answer"`
}

type lifelinePayload struct {
	Kind domain.LifelineKind `json:"kind"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// ServeWS upgrades the request and wires the connection into the game use cases.
// Every tick the current state is pushed and an expired question is auto-submitted.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	gameID := chi.URLParam(r, "gameID")

	// Resolve the game before upgrading so unknown IDs get a plain 404.
	if _, err := h.games.State(r.Context(), uid, gameID); err != nil {
		writeMessage(w, statusFor(err), err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel, err := h.games.Subscribe(r.Context(), uid, gameID)
	if err != nil {
		_ = writeWS(conn, outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.games.Release(gameID)

	send := make(chan outboundMessage, 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// single writer; gorilla connections allow one concurrent writer
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := writeWS(conn, msg); err != nil {
				h.log.Debug("ws write failed", zap.Error(err))
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		ticker := time.NewTicker(h.tick)
		defer ticker.Stop()
		for {
			var msg outboundMessage
			select {
			case st, ok := <-updates:
				if !ok {
					return
				}
				msg = outboundMessage{Type: "state", Payload: st}
			case <-ticker.C:
				st, err := h.games.Expire(r.Context(), uid, gameID)
				if err != nil {
					msg = outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}}
				} else {
					msg = outboundMessage{Type: "tick", Payload: st}
				}
			case <-closeSignals:
				return
			}
			select {
			case send <- msg:
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		var cmdErr error
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				cmdErr = errBadRequest
				break
			}
			_, cmdErr = h.games.Answer(r.Context(), uid, gameID, payload.Answer)
		case "lifeline":
			var payload lifelinePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				cmdErr = errBadRequest
				break
			}
			_, cmdErr = h.games.UseLifeline(r.Context(), uid, gameID, payload.Kind)
		case "next":
			_, cmdErr = h.games.Next(r.Context(), uid, gameID)
		default:
			cmdErr = errUnsupportedMessage
		}
		// successful commands are answered by the broadcast state
		if cmdErr != nil {
			select {
			case send <- outboundMessage{Type: "error", Payload: errorPayload{Message: cmdErr.Error()}}:
			case <-writerDone:
			}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func writeWS(conn *websocket.Conn, msg outboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
