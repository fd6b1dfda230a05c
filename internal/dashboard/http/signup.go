package http

import (
	"errors"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type SignupOTPHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Request Signup OTP
//	@Description	Email a 6-digit verification code to an address on the team domain
//	@Description	Already-registered addresses are refused and no email is sent
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.OTPRequest		true	"Email to verify"
//	@Success		200		{object}	dashsdk.OTPResponse		"message"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		409		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		502		{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/auth/signup/otp [post].
func (h *SignupOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.OTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.SignupService.RequestCode(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDomain):
			httpx.WriteError(w, http.StatusBadRequest, "Email must be on the team domain")
		case errors.Is(err, service.ErrAlreadyRegistered):
			httpx.WriteError(w, http.StatusConflict, "Email is already registered")
		case errors.Is(err, service.ErrDeliveryFailed):
			httpx.WriteError(w, http.StatusBadGateway, "Failed to send OTP email")
		default:
			log.Error("failed to issue signup otp", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.OTPResponse{Message: "OTP sent successfully"})
}

type SignupCompleteHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Complete Signup
//	@Description	Verify the emailed code, redeem a team key and create the member account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.SignupCompleteRequest	true	"Signup details"
//	@Success		201		{object}	dashsdk.Member					"created member"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"error"
//	@Failure		409		{object}	dashsdk.ErrorResponse			"error"
//	@Failure		502		{object}	dashsdk.ErrorResponse			"error"
//	@Router			/v1/auth/signup/complete [post].
func (h *SignupCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.SignupCompleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.SignupService.Complete(ctx, service.SignupRequest{
		Email:    req.Email,
		Code:     req.Code,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		TeamKey:  req.TeamKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignupRequest):
			httpx.WriteError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired OTP")
		case errors.Is(err, service.ErrOTPExpired):
			httpx.WriteError(w, http.StatusBadRequest, "OTP has expired")
		case errors.Is(err, service.ErrKeyNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid team key")
		case errors.Is(err, service.ErrKeyInactive):
			httpx.WriteError(w, http.StatusBadRequest, "Team key is inactive")
		case errors.Is(err, service.ErrKeyExpired):
			httpx.WriteError(w, http.StatusBadRequest, "Team key has expired")
		case errors.Is(err, service.ErrKeyQuotaExhausted):
			httpx.WriteError(w, http.StatusBadRequest, "Team key usage limit reached")
		case errors.Is(err, service.ErrAlreadyRegistered):
			httpx.WriteError(w, http.StatusConflict, "Email is already registered")
		case errors.Is(err, service.ErrIdentityCreate):
			httpx.WriteError(w, http.StatusBadGateway, "Failed to create account")
		default:
			log.Error("failed to complete signup", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, memberResponse(member))
}
