package http

import (
	"errors"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Member Login
//	@Description	Exchange email and password for a session token
//	@Description	Accounts without a membership record are refused with 403
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dashsdk.LoginResponse	"access_token, member"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrNotTeamMember):
			httpx.WriteError(w, http.StatusForbidden, "Not a team member")
		case errors.Is(err, identity.ErrUnavailable):
			httpx.WriteError(w, http.StatusBadGateway, "Identity service unavailable")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.LoginResponse{
		AccessToken: result.Session.AccessToken,
		TokenType:   result.Session.TokenType,
		ExpiresIn:   result.Session.ExpiresIn,
		Member:      memberResponse(result.Member),
	})
}

type MemberHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current Member
//	@Description	Return the membership profile behind the bearer token
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dashsdk.Member			"member"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/auth/member [get].
func (h *MemberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	member, ok := memberFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memberResponse(member))
}

func memberResponse(m domain.Member) dashsdk.Member {
	return dashsdk.Member{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      m.Role,
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
	}
}
