package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"lido-club-backend/internal/database/models"
	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/realtime"
	"lido-club-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is the number of messages loaded when a team chat is opened
const DefaultHistoryLimit = 200

const notificationPreviewLength = 80

// ChatService stores team chat messages and fans them out over the realtime broker
type ChatService struct {
	repo         repository.ChatMessageRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	playerRepo   repository.TeamPlayerRepositoryInterface
	broker       realtime.Broker
	notifier     NotificationServiceInterface
	historyLimit int
}

// NewChatService creates a new chat service. A non-positive historyLimit falls back to DefaultHistoryLimit.
func NewChatService(
	repo repository.ChatMessageRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	playerRepo repository.TeamPlayerRepositoryInterface,
	broker realtime.Broker,
	notifier NotificationServiceInterface,
	historyLimit int,
) *ChatService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ChatService{
		repo:         repo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		broker:       broker,
		notifier:     notifier,
		historyLimit: historyLimit,
	}
}

// SendMessageRequest carries a chat message from the client
type SendMessageRequest struct {
	Message string `json:"message"`
}

// History returns the latest messages of a team, oldest first. Only team members may read it.
func (s *ChatService) History(ctx context.Context, teamID uuid.UUID, email string, limit int) ([]models.ChatMessage, error) {
	if err := s.requireMember(ctx, teamID, email); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	messages, err := s.repo.ListRecent(ctx, teamID, limit)
	if err != nil {
		return nil, apperrors.NewRemoteError("load chat history", err, nil)
	}
	return messages, nil
}

// Send stores a message and only then publishes it on the team channel and notifies the other members
func (s *ChatService) Send(ctx context.Context, teamID uuid.UUID, email, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("message", apperrors.ErrEmptyMessage.Error())
	}
	email = models.NormalizeEmail(email)
	if err := s.requireMember(ctx, teamID, email); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:          uuid.New(),
		TeamID:      teamID,
		SenderEmail: email,
		Message:     text,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperrors.NewRemoteError("send message", err, nil)
	}

	log := logger.WithContext(ctx).WithField("team_id", teamID)
	if err := s.broker.Publish(ctx, realtime.ChatChannel(teamID), realtime.EventMessage, msg); err != nil {
		log.WithError(err).Warn("failed to publish chat message")
	}
	s.notifyMembers(ctx, msg)

	return msg, nil
}

func (s *ChatService) requireMember(ctx context.Context, teamID uuid.UUID, email string) error {
	ok, _, err := isTeamMember(ctx, s.teamRepo, s.playerRepo, teamID, email)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

// notifyMembers sends team_message notifications to everyone on the team except the sender
func (s *ChatService) notifyMembers(ctx context.Context, msg *models.ChatMessage) {
	log := logger.WithContext(ctx).WithField("team_id", msg.TeamID)

	team, err := s.teamRepo.GetByID(ctx, msg.TeamID)
	if err != nil {
		log.WithError(err).Warn("failed to load team for chat notifications")
		return
	}
	players, err := s.playerRepo.ListByTeam(ctx, msg.TeamID)
	if err != nil {
		log.WithError(err).Warn("failed to load team players for chat notifications")
		return
	}

	recipients := make([]string, 0, len(players)+1)
	for _, p := range players {
		if models.NormalizeEmail(p.Email) != msg.SenderEmail {
			recipients = append(recipients, p.Email)
		}
	}
	if team.CaptainEmail != nil && models.NormalizeEmail(*team.CaptainEmail) != msg.SenderEmail {
		recipients = append(recipients, *team.CaptainEmail)
	}

	title := fmt.Sprintf("Ny besked i %s", team.Name)
	if err := s.notifier.Notify(ctx, recipients, models.NotificationTeamMessage, title, preview(msg.Message), nil); err != nil {
		log.WithError(err).Warn("failed to send chat notifications")
	}
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= notificationPreviewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:notificationPreviewLength]) + "…"
}
