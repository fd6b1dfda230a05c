package dashboard_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	httpapi "github.com/nextnukkad/team-dashboard/internal/dashboard/http"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/nextnukkad/team-dashboard/internal/expo"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

/*
 * Common helpers for dashboard end-to-end tests. The whole service is
 * assembled in-process around an in-memory database, with email and
 * push delivery captured by fakes so the tests can read OTP codes and
 * inspect push batches.
 */

const (
	memberEmail    = "asha@nextnukkad.in"
	memberName     = "Asha Rao"
	memberRole     = "Support"
	memberPassword = "Passw0rd!"

	teamKeyCode = "KEY-E2E-001"
)

// capturedMail is one OTP email the fake mailer intercepted.
type capturedMail struct {
	To      string
	Code    string
	Purpose domain.OTPPurpose
}

// fakeMailer records OTP emails instead of delivering them.
type fakeMailer struct {
	mu   sync.Mutex
	sent []capturedMail
}

func (m *fakeMailer) SendOTP(_ context.Context, to, code string, purpose domain.OTPPurpose) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, capturedMail{To: to, Code: code, Purpose: purpose})
	return nil
}

func (m *fakeMailer) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "expected at least one OTP email")
	return m.sent[len(m.sent)-1].Code
}

// fakePushGateway mimics the Expo push endpoint, answering every
// message with an ok ticket and recording the batches it saw.
type fakePushGateway struct {
	mu      sync.Mutex
	batches [][]expo.Message
}

func (g *fakePushGateway) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msgs []expo.Message
		if err := json.NewDecoder(r.Body).Decode(&msgs); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		g.mu.Lock()
		g.batches = append(g.batches, msgs)
		g.mu.Unlock()

		tickets := make([]expo.Ticket, len(msgs))
		for i := range tickets {
			tickets[i] = expo.Ticket{Status: "ok", ID: idx.New().String()}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]expo.Ticket{"data": tickets})
	}
}

// env holds the assembled service and the fakes behind it.
type env struct {
	Store  *sqlite.Store
	Mailer *fakeMailer
	Push   *fakePushGateway

	// Identity is exposed so tests can mint accounts that are valid
	// upstream but have no team membership.
	Identity identity.Gateway
}

// setupDashboard wires the full HTTP surface over an in-memory store
// and returns an SDK client pointed at it.
func setupDashboard(t *testing.T) (*dashsdk.Client, *env) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	mail := &fakeMailer{}
	push := &fakePushGateway{}

	pushSrv := httptest.NewServer(push.handler())
	t.Cleanup(pushSrv.Close)

	gateway := identity.NewLocal(st, []byte("e2e-secret"), time.Hour)

	otp := &service.OTPService{
		Store:         st,
		Mailer:        mail,
		AllowedDomain: "nextnukkad.in",
		TTL:           10 * time.Minute,
	}
	keys := &service.TeamKeyService{Store: st}

	logger := slog.New(slog.DiscardHandler)
	router := httpapi.NewRouter("e2e", st, logger)
	router.SignupService = &service.SignupService{
		Store:    st,
		OTP:      otp,
		TeamKeys: keys,
		Identity: gateway,
	}
	router.ResetService = &service.ResetService{
		Store:    st,
		OTP:      otp,
		Identity: gateway,
	}
	router.SessionService = &service.SessionService{
		Store:    st,
		Identity: gateway,
	}
	router.ModerationService = &service.ModerationService{Store: st}
	router.NotifyService = &service.NotifyService{
		Store: st,
		Expo:  expo.NewClient(expo.WithSendURL(pushSrv.URL)),
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return dashsdk.NewClient(srv.URL), &env{
		Store:    st,
		Mailer:   mail,
		Push:     push,
		Identity: gateway,
	}
}

func seedTeamKey(t *testing.T, e *env, code string, maxUses int) {
	t.Helper()
	require.NoError(t, e.Store.TeamKeys().CreateKey(context.Background(), domain.TeamKey{
		ID:       idx.New().String(),
		KeyCode:  code,
		IsActive: true,
		MaxUses:  maxUses,
	}))
}

func seedEndUser(t *testing.T, e *env, id, name, status string) {
	t.Helper()
	_, err := e.Store.DB().Exec(
		`INSERT INTO end_users (id, email, name, account_status) VALUES (?, ?, ?, ?)`,
		id, id+"@example.com", name, status,
	)
	require.NoError(t, err)
}

func seedPushToken(t *testing.T, e *env, userID, token string) {
	t.Helper()
	_, err := e.Store.DB().Exec(
		`INSERT INTO push_tokens (user_id, token, platform) VALUES (?, ?, 'android')`,
		userID, token,
	)
	require.NoError(t, err)
}

// signupMember drives the full two-step signup flow and returns a
// logged-in session.
func signupMember(t *testing.T, client *dashsdk.Client, e *env) *dashsdk.Session {
	t.Helper()
	ctx := context.Background()

	seedTeamKey(t, e, teamKeyCode, 1)

	require.NoError(t, client.RequestSignupOTP(ctx, memberEmail))

	member, err := client.CompleteSignup(ctx, dashsdk.SignupCompleteRequest{
		Email:    memberEmail,
		Code:     e.Mailer.lastCode(t),
		Password: memberPassword,
		Name:     memberName,
		Role:     memberRole,
		TeamKey:  teamKeyCode,
	})
	require.NoError(t, err)
	require.Equal(t, memberEmail, member.Email)

	session, err := client.Login(ctx, memberEmail, memberPassword)
	require.NoError(t, err)
	return session
}

// requireAPIStatus asserts that err is an API error with the given
// HTTP status.
func requireAPIStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var apiErr *dashsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
}
