package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/expo"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var (
	ErrInvalidNotification = errors.New("invalid notification request")
	ErrInvalidTarget       = errors.New("invalid notification target")
)

const notificationHistoryLimit = 50

// SendRequest describes one push campaign.
type SendRequest struct {
	Title       string
	Body        string
	TargetType  string
	TargetUsers []string
	Data        map[string]any
}

// SendResult is the fan-out outcome.
type SendResult struct {
	NotificationID  string
	TotalRecipients int
	SuccessCount    int
	FailCount       int
}

// NotifyService fans push notifications out to end-user devices via
// the Expo push API and records each campaign.
type NotifyService struct {
	Store store.Store
	Expo  *expo.Client
}

// Send resolves target device tokens, pushes in API-sized batches and
// persists a history row with per-ticket outcome counts. Dead tokens
// reported by the gateway are deactivated.
func (s *NotifyService) Send(ctx context.Context, req SendRequest, actor domain.Member) (SendResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	if req.Title == "" || req.Body == "" {
		return SendResult{}, ErrInvalidNotification
	}
	switch req.TargetType {
	case domain.TargetAll:
	case domain.TargetSelected:
		if len(req.TargetUsers) == 0 {
			return SendResult{}, ErrInvalidTarget
		}
	default:
		return SendResult{}, ErrInvalidTarget
	}

	// 2. Resolve active device tokens.
	var (
		tokens []domain.PushToken
		err    error
	)
	if req.TargetType == domain.TargetAll {
		tokens, err = s.Store.PushTokens().ListActiveTokens(ctx)
	} else {
		tokens, err = s.Store.PushTokens().ListActiveTokensForUsers(ctx, req.TargetUsers)
	}
	if err != nil {
		log.Error("failed to list push tokens", slog.Any("error", err))
		return SendResult{}, err
	}

	unique := dedupeTokens(tokens)
	if len(unique) == 0 {
		log.Info("notification had no active recipients",
			slog.String("target_type", req.TargetType),
		)
		return SendResult{}, nil
	}

	// 3. Push in batches of at most MaxBatchSize.
	success, fail := 0, 0
	for start := 0; start < len(unique); start += expo.MaxBatchSize {
		end := min(start+expo.MaxBatchSize, len(unique))
		batch := make([]expo.Message, 0, end-start)
		for _, token := range unique[start:end] {
			batch = append(batch, expo.Message{
				To:        token,
				Sound:     "default",
				Title:     req.Title,
				Body:      req.Body,
				Data:      req.Data,
				Priority:  "high",
				ChannelID: "default",
			})
		}

		tickets, err := s.Expo.Send(ctx, batch)
		if err != nil {
			// A failed batch counts every message as failed; later
			// batches still go out.
			log.Error("push batch failed", slog.Any("error", err))
			fail += len(batch)
			continue
		}

		for i, ticket := range tickets {
			if ticket.OK() {
				success++
				continue
			}
			fail++
			if ticket.DeviceNotRegistered() && i < len(batch) {
				if err := s.Store.PushTokens().DeactivateToken(ctx, batch[i].To); err != nil {
					log.Error("failed to deactivate dead token", slog.Any("error", err))
				}
			}
		}
	}

	// 4. Record the campaign. The pushes already went out, so a
	// history write failure is logged but does not fail the send.
	record := domain.Notification{
		ID:           idx.New().String(),
		Title:        req.Title,
		Body:         req.Body,
		TargetType:   req.TargetType,
		SentBy:       actor.ID,
		SuccessCount: success,
		FailCount:    fail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Notifications().InsertNotification(ctx, record); err != nil {
		log.Error("failed to record notification", slog.Any("error", err))
	}

	log.Info("notification sent",
		slog.String("notification_id", record.ID),
		slog.Int("recipients", len(unique)),
		slog.Int("success", success),
		slog.Int("fail", fail),
	)
	return SendResult{
		NotificationID:  record.ID,
		TotalRecipients: len(unique),
		SuccessCount:    success,
		FailCount:       fail,
	}, nil
}

// History lists recent campaigns newest-first.
func (s *NotifyService) History(ctx context.Context) ([]domain.Notification, error) {
	return s.Store.Notifications().ListNotifications(ctx, notificationHistoryLimit)
}

func dedupeTokens(tokens []domain.PushToken) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t.Token]; ok {
			continue
		}
		seen[t.Token] = struct{}{}
		out = append(out, t.Token)
	}
	return out
}
