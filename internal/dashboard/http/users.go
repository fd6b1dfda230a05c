package http

import (
	"errors"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type UsersListHandler struct {
	ModerationService *service.ModerationService
}

// ServeHTTP godoc
//
//	@Summary		List End Users
//	@Description	Consumer-app accounts newest-first for the moderation screen
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dashsdk.EndUser			"users"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/dashboard/users [get].
func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.ModerationService.ListEndUsers(ctx)
	if err != nil {
		log.Error("failed to list end users", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dashsdk.EndUser, 0, len(users))
	for _, u := range users {
		out = append(out, endUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type UserStatusHandler struct {
	ModerationService *service.ModerationService
}

// ServeHTTP godoc
//
//	@Summary		Moderate End User
//	@Description	Set an end-user account status to approved, rejected or banned
//	@Description	The change is recorded in the activity log naming the acting member
//	@Tags			Dashboard
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"End-user ID"
//	@Param			request	body		dashsdk.StatusUpdateRequest	true	"New status"
//	@Success		200		{object}	dashsdk.EndUser				"updated user"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"error"
//	@Failure		404		{object}	dashsdk.ErrorResponse		"error"
//	@Router			/v1/dashboard/users/{id}/status [post].
func (h *UserStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := memberFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	userID := r.PathValue("id")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "User id is required")
		return
	}

	var req dashsdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ModerationService.SetAccountStatus(ctx, userID, req.Status, actor); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			httpx.WriteError(w, http.StatusBadRequest, "Status must be approved, rejected or banned")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found")
		default:
			log.Error("failed to update user status", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	user, err := h.ModerationService.Store.EndUsers().GetEndUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to re-read moderated user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, endUserResponse(user))
}

func endUserResponse(u domain.EndUser) dashsdk.EndUser {
	return dashsdk.EndUser{
		ID:            u.ID,
		Email:         u.Email,
		Phone:         u.Phone,
		Name:          u.Name,
		Locality:      u.Locality,
		City:          u.City,
		State:         u.State,
		AccountMode:   u.AccountMode,
		OnlineStatus:  u.OnlineStatus,
		AccountStatus: u.AccountStatus,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}
