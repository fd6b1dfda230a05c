package http

import (
	"errors"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type NotificationSendHandler struct {
	NotifyService *service.NotifyService
}

// ServeHTTP godoc
//
//	@Summary		Send Push Notification
//	@Description	Fan a push campaign out to all or selected end users' devices
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.SendNotificationRequest		true	"Campaign"
//	@Success		200		{object}	dashsdk.SendNotificationResponse	"outcome counts"
//	@Failure		400		{object}	dashsdk.ErrorResponse				"error"
//	@Failure		401		{object}	dashsdk.ErrorResponse				"error"
//	@Router			/v1/dashboard/notifications/send [post].
func (h *NotificationSendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := memberFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req dashsdk.SendNotificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.NotifyService.Send(ctx, service.SendRequest{
		Title:       req.Title,
		Body:        req.Body,
		TargetType:  req.TargetType,
		TargetUsers: req.TargetUsers,
		Data:        req.Data,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNotification):
			httpx.WriteError(w, http.StatusBadRequest, "Title and body are required")
		case errors.Is(err, service.ErrInvalidTarget):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid target type")
		default:
			log.Error("failed to send notification", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.SendNotificationResponse{
		NotificationID:  result.NotificationID,
		TotalRecipients: result.TotalRecipients,
		SuccessfulSends: result.SuccessCount,
		FailedSends:     result.FailCount,
	})
}

type NotificationListHandler struct {
	NotifyService *service.NotifyService
}

// ServeHTTP godoc
//
//	@Summary		Notification History
//	@Description	Recent push campaigns newest-first
//	@Tags			Notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dashsdk.Notification	"notifications"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/dashboard/notifications [get].
func (h *NotificationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	history, err := h.NotifyService.History(ctx)
	if err != nil {
		log.Error("failed to list notifications", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dashsdk.Notification, 0, len(history))
	for _, n := range history {
		out = append(out, dashsdk.Notification{
			ID:           n.ID,
			Title:        n.Title,
			Body:         n.Body,
			TargetType:   n.TargetType,
			SentBy:       n.SentBy,
			SuccessCount: n.SuccessCount,
			FailCount:    n.FailCount,
			CreatedAt:    n.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
