package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

const (
	testDomain = "nextnukkad.in"
	testTTL    = 10 * time.Minute
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// recordingMailer captures sent codes instead of delivering them.
type recordingMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  bool
	calls int
}

type sentMail struct {
	To      string
	Code    string
	Purpose domain.OTPPurpose
}

func (m *recordingMailer) SendOTP(_ context.Context, to, code string, purpose domain.OTPPurpose) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.fail {
		return errors.New("smtp said no")
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code, Purpose: purpose})
	return nil
}

func (m *recordingMailer) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	require.NotEmpty(t, m.sent, "expected at least one email")
	return m.sent[len(m.sent)-1].Code
}

// testEnv wires the full service graph over an in-memory store and
// the local identity provider.
type testEnv struct {
	Store    *sqlite.Store
	Mailer   *recordingMailer
	Identity identity.Gateway
	OTP      *OTPService
	TeamKeys *TeamKeyService
	Signup   *SignupService
	Reset    *ResetService
	Sessions *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := newTestStore(t)
	mail := &recordingMailer{}
	gateway := identity.NewLocal(st, []byte("test-secret"), time.Hour)

	otp := &OTPService{
		Store:         st,
		Mailer:        mail,
		AllowedDomain: testDomain,
		TTL:           testTTL,
	}
	keys := &TeamKeyService{Store: st}

	return &testEnv{
		Store:    st,
		Mailer:   mail,
		Identity: gateway,
		OTP:      otp,
		TeamKeys: keys,
		Signup: &SignupService{
			Store:    st,
			OTP:      otp,
			TeamKeys: keys,
			Identity: gateway,
		},
		Reset: &ResetService{
			Store:    st,
			OTP:      otp,
			Identity: gateway,
		},
		Sessions: &SessionService{
			Store:    st,
			Identity: gateway,
		},
	}
}

func seedTeamKey(t *testing.T, st store.Store, code string, maxUses int) domain.TeamKey {
	t.Helper()

	key := domain.TeamKey{
		ID:        idx.New().String(),
		KeyCode:   code,
		IsActive:  true,
		MaxUses:   maxUses,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.TeamKeys().CreateKey(context.Background(), key))
	return key
}
