package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/realtime"

	"github.com/google/uuid"
)

// Client command types accepted by a chat session
const (
	CommandSelectTeam = "select_team"
	CommandSend       = "send"
	CommandPing       = "ping"
	CommandRefresh    = "refresh"
)

// Server event types emitted by a chat session
const (
	ServerEventTeams        = "teams"
	ServerEventHistory      = "history"
	ServerEventMessage      = "message"
	ServerEventUnread       = "unread"
	ServerEventNotification = "notification"
	ServerEventError        = "error"
	ServerEventPong         = "pong"
)

const sessionInboxSize = 256

// ClientCommand is a command sent by the chat client
type ClientCommand struct {
	Type   string     `json:"type"`
	TeamID *uuid.UUID `json:"team_id,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// ServerEvent is pushed to the chat client
type ServerEvent struct {
	Type         string               `json:"type"`
	TeamID       *uuid.UUID           `json:"team_id,omitempty"`
	Teams        []TeamResponse       `json:"teams,omitempty"`
	Messages     []models.ChatMessage `json:"messages,omitempty"`
	Message      *models.ChatMessage  `json:"message,omitempty"`
	Unread       map[uuid.UUID]int    `json:"unread,omitempty"`
	UnreadTotal  int                  `json:"unread_total"`
	Notification *models.Notification `json:"notification,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// Emitter delivers server events to the client
type Emitter func(ServerEvent) error

// ChatSession is the server side of one chat connection. Commands and realtime events are
// processed one at a time by Run, so the message list and unread counts need no extra locking.
type ChatSession struct {
	email      string
	chat       ChatServiceInterface
	membership MembershipServiceInterface
	subs       *realtime.SubscriptionManager

	inbox  chan realtime.Event
	teams  []TeamResponse
	list   *MessageList
	unread *UnreadTracker
}

// NewChatSession creates a session for email. Nothing is loaded or subscribed until Run.
func NewChatSession(email string, chat ChatServiceInterface, membership MembershipServiceInterface, broker realtime.Broker) *ChatSession {
	s := &ChatSession{
		email:      models.NormalizeEmail(email),
		chat:       chat,
		membership: membership,
		inbox:      make(chan realtime.Event, sessionInboxSize),
		list:       NewMessageList(),
		unread:     NewUnreadTracker(),
	}
	s.subs = realtime.NewSubscriptionManager(broker, s.deliver)
	return s
}

// deliver is called from broker goroutines; the event is handed to Run through the inbox.
// A full inbox drops the event rather than blocking the publisher.
func (s *ChatSession) deliver(ev realtime.Event) {
	select {
	case s.inbox <- ev:
	default:
		logger.New().WithFields(map[string]interface{}{
			"user":    s.email,
			"channel": ev.Channel,
		}).Warn("chat session inbox full, dropping event")
	}
}

// Run loads the user's teams, opens the first one and then serves commands until ctx is done
// or commands is closed. All subscriptions are closed on return.
func (s *ChatSession) Run(ctx context.Context, commands <-chan ClientCommand, emit Emitter) error {
	defer func() {
		if err := s.subs.Close(); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("failed to close chat subscriptions")
		}
	}()

	if err := s.syncTeams(ctx, emit); err != nil {
		return err
	}
	if len(s.teams) > 0 {
		if err := s.selectTeam(ctx, s.teams[0].ID, emit); err != nil {
			return err
		}
	} else if err := s.emitUnread(emit); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if err := s.handleCommand(ctx, cmd, emit); err != nil {
				return err
			}
		case ev := <-s.inbox:
			if err := s.handleEvent(ev, emit); err != nil {
				return err
			}
		}
	}
}

// handleCommand returns an error only when the client can no longer be reached.
// Command failures are reported to the client as error events.
func (s *ChatSession) handleCommand(ctx context.Context, cmd ClientCommand, emit Emitter) error {
	switch cmd.Type {
	case CommandPing:
		return emit(ServerEvent{Type: ServerEventPong})
	case CommandRefresh:
		return s.loadTeams(ctx, emit)
	case CommandSelectTeam:
		if cmd.TeamID == nil || !s.hasTeam(*cmd.TeamID) {
			return emitError(emit, cmd.TeamID, apperrors.ErrNotTeamMember)
		}
		return s.selectTeam(ctx, *cmd.TeamID, emit)
	case CommandSend:
		teamID := s.list.Team()
		if cmd.TeamID != nil {
			teamID = *cmd.TeamID
		}
		if teamID == uuid.Nil {
			return emitError(emit, nil, apperrors.ErrNotTeamMember)
		}
		msg, err := s.chat.Send(ctx, teamID, s.email, cmd.Text)
		if err != nil {
			return emitError(emit, &teamID, err)
		}
		if msg.TeamID == s.list.Team() && s.list.Append(*msg) {
			return emit(ServerEvent{Type: ServerEventMessage, TeamID: &msg.TeamID, Message: msg})
		}
		return nil
	default:
		return emitError(emit, nil, fmt.Errorf("unknown command %q", cmd.Type))
	}
}

func (s *ChatSession) handleEvent(ev realtime.Event, emit Emitter) error {
	log := logger.New().WithFields(map[string]interface{}{"user": s.email, "channel": ev.Channel})

	switch ev.Type {
	case realtime.EventMessage:
		var msg models.ChatMessage
		if err := json.Unmarshal(ev.Payload, &msg); err != nil {
			log.WithError(err).Warn("invalid chat event payload")
			return nil
		}
		if msg.TeamID == s.list.Team() {
			if s.list.Append(msg) {
				return emit(ServerEvent{Type: ServerEventMessage, TeamID: &msg.TeamID, Message: &msg})
			}
			return nil
		}
		if !s.hasTeam(msg.TeamID) {
			return nil
		}
		s.unread.Increment(msg.TeamID)
		return s.emitUnread(emit)
	case realtime.EventNotification:
		var n models.Notification
		if err := json.Unmarshal(ev.Payload, &n); err != nil {
			log.WithError(err).Warn("invalid notification event payload")
			return nil
		}
		return emit(ServerEvent{Type: ServerEventNotification, Notification: &n})
	default:
		log.WithField("type", ev.Type).Debug("ignoring realtime event")
		return nil
	}
}

// loadTeams reloads the user's teams on refresh. A selected team the user has left is swapped
// for the first remaining one.
func (s *ChatSession) loadTeams(ctx context.Context, emit Emitter) error {
	if err := s.syncTeams(ctx, emit); err != nil {
		return err
	}
	if current := s.list.Team(); current != uuid.Nil && !s.hasTeam(current) {
		s.list.Replace(uuid.Nil, nil)
		if len(s.teams) > 0 {
			return s.selectTeam(ctx, s.teams[0].ID, emit)
		}
	}
	return s.emitUnread(emit)
}

// syncTeams fetches the user's teams, aligns subscriptions and unread counts with them and emits
// the teams event.
func (s *ChatSession) syncTeams(ctx context.Context, emit Emitter) error {
	teams, err := s.membership.UserTeams(ctx, s.email)
	if err != nil {
		return emitError(emit, nil, err)
	}
	s.teams = teams

	ids := make([]uuid.UUID, 0, len(teams))
	keys := make([]string, 0, len(teams)+1)
	for _, t := range teams {
		ids = append(ids, t.ID)
		keys = append(keys, realtime.ChatChannel(t.ID))
	}
	keys = append(keys, realtime.NotificationChannel(s.email))
	if err := s.subs.Sync(ctx, keys); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("some chat subscriptions failed")
	}
	s.unread.Retain(ids)

	return emit(ServerEvent{Type: ServerEventTeams, Teams: teams})
}

// selectTeam makes teamID the active chat, loads its history and clears its unread count
func (s *ChatSession) selectTeam(ctx context.Context, teamID uuid.UUID, emit Emitter) error {
	history, err := s.chat.History(ctx, teamID, s.email, 0)
	if err != nil {
		return emitError(emit, &teamID, err)
	}
	s.list.Replace(teamID, history)
	s.unread.Reset(teamID)

	if err := emit(ServerEvent{Type: ServerEventHistory, TeamID: &teamID, Messages: s.list.Messages()}); err != nil {
		return err
	}
	return s.emitUnread(emit)
}

func (s *ChatSession) emitUnread(emit Emitter) error {
	return emit(ServerEvent{
		Type:        ServerEventUnread,
		Unread:      s.unread.Snapshot(),
		UnreadTotal: s.unread.Total(),
	})
}

func (s *ChatSession) hasTeam(id uuid.UUID) bool {
	for _, t := range s.teams {
		if t.ID == id {
			return true
		}
	}
	return false
}

func emitError(emit Emitter, teamID *uuid.UUID, err error) error {
	message := err.Error()
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		message = verr.Message
	}
	return emit(ServerEvent{Type: ServerEventError, TeamID: teamID, Error: message})
}
