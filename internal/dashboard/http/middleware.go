package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

// RequireMember authenticates the bearer token and enforces team
// membership before the wrapped handler runs. The resolved member
// lands in the request context; 401 means the token is bad, 403 means
// a valid account that is not on the team.
func RequireMember(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			member, err := sessions.VerifyMember(ctx, token)
			if err != nil {
				switch {
				case errors.Is(err, identity.ErrInvalidToken):
					httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
				case errors.Is(err, service.ErrNotTeamMember):
					httpx.WriteError(w, http.StatusForbidden, "Not a team member")
				case errors.Is(err, identity.ErrUnavailable):
					httpx.WriteError(w, http.StatusBadGateway, "Identity service unavailable")
				default:
					log.Error("membership check failed", "err", err)
					httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyMemberID, member.ID)
			ctx = context.WithValue(ctx, httpx.CtxKeyMember, member)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// memberFromContext pulls the acting member placed by RequireMember.
func memberFromContext(ctx context.Context) (domain.Member, bool) {
	member, ok := ctx.Value(httpx.CtxKeyMember).(domain.Member)
	return member, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
