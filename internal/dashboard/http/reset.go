package http

import (
	"errors"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

type ResetOTPHandler struct {
	ResetService *service.ResetService
}

// ServeHTTP godoc
//
//	@Summary		Request Password Reset OTP
//	@Description	Email a reset code to an existing team member
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.OTPRequest		true	"Member email"
//	@Success		200		{object}	dashsdk.OTPResponse		"message"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error"
//	@Failure		502		{object}	dashsdk.ErrorResponse	"error"
//	@Router			/v1/auth/reset/otp [post].
func (h *ResetOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.ResetService.Request(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "No team member with that email")
		case errors.Is(err, service.ErrInvalidDomain):
			httpx.WriteError(w, http.StatusBadRequest, "Email must be on the team domain")
		case errors.Is(err, service.ErrDeliveryFailed):
			httpx.WriteError(w, http.StatusBadGateway, "Failed to send OTP email")
		default:
			log.Error("failed to issue reset otp", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.OTPResponse{Message: "OTP sent successfully"})
}

type ResetCompleteHandler struct {
	ResetService *service.ResetService
}

// ServeHTTP godoc
//
//	@Summary		Complete Password Reset
//	@Description	Verify the emailed reset code and set a new password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.ResetCompleteRequest	true	"Reset details"
//	@Success		200		{object}	dashsdk.OTPResponse				"message"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"error"
//	@Failure		502		{object}	dashsdk.ErrorResponse			"error"
//	@Router			/v1/auth/reset/complete [post].
func (h *ResetCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.ResetCompleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ResetService.Complete(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetRequest):
			httpx.WriteError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired OTP")
		case errors.Is(err, service.ErrOTPExpired):
			httpx.WriteError(w, http.StatusBadRequest, "OTP has expired")
		case errors.Is(err, identity.ErrUnavailable):
			httpx.WriteError(w, http.StatusBadGateway, "Identity service unavailable")
		default:
			log.Error("failed to complete reset", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.OTPResponse{Message: "Password updated successfully"})
}
