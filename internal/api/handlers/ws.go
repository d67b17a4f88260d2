package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/realtime"
	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait       = 10 * time.Second
	maxCommandSize  = 8 * 1024
	outboundBuffer  = 64
	defaultPingTime = 54 * time.Second
)

// ChatSocketConfig tunes the websocket transport
type ChatSocketConfig struct {
	// AllowedOrigins is matched against the Origin header; empty allows any origin
	AllowedOrigins []string
	PingPeriod     time.Duration
}

// ChatSocketHandler upgrades chat connections and runs one ChatSession per socket
type ChatSocketHandler struct {
	chatService       service.ChatServiceInterface
	membershipService service.MembershipServiceInterface
	broker            realtime.Broker
	upgrader          websocket.Upgrader
	pingPeriod        time.Duration
	pongWait          time.Duration
}

// NewChatSocketHandler creates a new websocket handler
func NewChatSocketHandler(chatService service.ChatServiceInterface, membershipService service.MembershipServiceInterface, broker realtime.Broker, cfg ChatSocketConfig) *ChatSocketHandler {
	ping := cfg.PingPeriod
	if ping <= 0 {
		ping = defaultPingTime
	}
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = struct{}{}
	}

	return &ChatSocketHandler{
		chatService:       chatService,
		membershipService: membershipService,
		broker:            broker,
		pingPeriod:        ping,
		// the peer must answer a ping before the next one is due
		pongWait: ping * 10 / 9,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(origins) == 0 {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
	}
}

// ServeChat handles GET /ws/chat
// @Summary Team chat websocket
// @Description Upgrades to a websocket speaking JSON commands (select_team, send, ping, refresh) and events (teams, history, message, unread, notification, error, pong)
// @Tags chat
// @Param access_token query string false "Session token when the Authorization header cannot be set"
// @Success 101 "Switching protocols"
// @Failure 401 {object} map[string]interface{} "Not signed in"
// @Security BearerAuth
// @Router /ws/chat [get]
func (h *ChatSocketHandler) ServeChat(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the client
		logger.WithContext(c.Request.Context()).WithError(err).Warn("websocket upgrade failed")
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sock := &chatSocket{
		conn:       conn,
		send:       make(chan service.ServerEvent, outboundBuffer),
		pingPeriod: h.pingPeriod,
		pongWait:   h.pongWait,
	}
	commands := make(chan service.ClientCommand)
	session := service.NewChatSession(email, h.chatService, h.membershipService, h.broker)

	log := logger.WithContext(ctx)
	log.Info("chat session opened")

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		return sock.readPump(ctx, commands)
	})
	g.Go(func() error {
		defer cancel()
		return sock.writePump(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return session.Run(ctx, commands, sock.emitter(ctx))
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("chat session ended with error")
	}
	log.Info("chat session closed")
}

// chatSocket serializes all writes through writePump; gorilla connections allow one writer at a time
type chatSocket struct {
	conn       *websocket.Conn
	send       chan service.ServerEvent
	pingPeriod time.Duration
	pongWait   time.Duration
}

func (s *chatSocket) emitter(ctx context.Context) service.Emitter {
	return func(ev service.ServerEvent) error {
		select {
		case s.send <- ev:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// readPump decodes client commands until the peer goes away. commands is closed on return.
func (s *chatSocket) readPump(ctx context.Context, commands chan<- service.ClientCommand) error {
	defer close(commands)

	s.conn.SetReadLimit(maxCommandSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	emit := s.emitter(ctx)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return err
			}
			return nil
		}

		var cmd service.ClientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			if err := emit(service.ServerEvent{Type: service.ServerEventError, Error: "invalid command"}); err != nil {
				return nil
			}
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

// writePump owns the connection for writing and closes it on return, which also ends readPump
func (s *chatSocket) writePump(ctx context.Context) error {
	ticker := time.NewTicker(s.pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case ev := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(ev); err != nil {
				return err
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return nil
		}
	}
}
