package http

import (
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type TransactionsHandler struct {
	ModerationService *service.ModerationService
}

// ServeHTTP godoc
//
//	@Summary		List Transactions
//	@Description	Consumer payment records newest-first
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dashsdk.Transaction		"transactions"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/dashboard/transactions [get].
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	txns, err := h.ModerationService.ListTransactions(ctx)
	if err != nil {
		log.Error("failed to list transactions", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dashsdk.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, dashsdk.Transaction{
			ID:            t.ID,
			UserID:        t.UserID,
			Amount:        t.Amount,
			PaymentStatus: t.PaymentStatus,
			PaymentMethod: t.PaymentMethod,
			CreatedAt:     t.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type ReportsHandler struct {
	ModerationService *service.ModerationService
}

// ServeHTTP godoc
//
//	@Summary		Reports Overview
//	@Description	User reports, block relationships and recent activity in one payload
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dashsdk.ReportsResponse	"reports, blocked_users, recent_activity"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/dashboard/reports [get].
func (h *ReportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	overview, err := h.ModerationService.ReportsOverview(ctx)
	if err != nil {
		log.Error("failed to build reports overview", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := dashsdk.ReportsResponse{
		Reports:  make([]dashsdk.UserReport, 0, len(overview.Reports)),
		Blocked:  make([]dashsdk.BlockedUser, 0, len(overview.Blocked)),
		Activity: make([]dashsdk.ActivityEntry, 0, len(overview.Activity)),
	}
	for _, rep := range overview.Reports {
		out.Reports = append(out.Reports, dashsdk.UserReport{
			ID:             rep.ID,
			ReporterID:     rep.ReporterID,
			ReportedUserID: rep.ReportedUserID,
			Reason:         rep.Reason,
			Status:         rep.Status,
			CreatedAt:      rep.CreatedAt,
		})
	}
	for _, b := range overview.Blocked {
		out.Blocked = append(out.Blocked, dashsdk.BlockedUser{
			ID:        b.ID,
			BlockerID: b.BlockerID,
			BlockedID: b.BlockedID,
			CreatedAt: b.CreatedAt,
		})
	}
	for _, e := range overview.Activity {
		out.Activity = append(out.Activity, activityResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type ActivityHandler struct {
	ModerationService *service.ModerationService
}

// ServeHTTP godoc
//
//	@Summary		Activity Feed
//	@Description	Recent end-user activity filtered to status changes, logins and logouts
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dashsdk.ActivityEntry	"activity"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/dashboard/activity [get].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	feed, err := h.ModerationService.ActivityFeed(ctx)
	if err != nil {
		log.Error("failed to list activity", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dashsdk.ActivityEntry, 0, len(feed))
	for _, e := range feed {
		out = append(out, activityResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func activityResponse(e domain.ActivityEntry) dashsdk.ActivityEntry {
	return dashsdk.ActivityEntry{
		ID:           e.ID,
		UserID:       e.UserID,
		ActivityType: e.ActivityType,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}
