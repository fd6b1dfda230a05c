package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

// ErrNotTeamMember means the credentials or token belong to a valid
// identity account that has no membership row. Deliberately distinct
// from bad credentials.
var ErrNotTeamMember = errors.New("account is not a team member")

// LoginResult pairs the session with the resolved membership.
type LoginResult struct {
	Session identity.Session
	Member  domain.Member
}

// SessionService authenticates members and backs the membership
// middleware. Every successful check refreshes last_login and flips
// is_active on, so the members screen reflects actual usage.
type SessionService struct {
	Store    store.Store
	Identity identity.Gateway
}

// Login exchanges credentials for a session, enforcing membership.
func (s *SessionService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Authenticate upstream.
	session, err := s.Identity.PasswordLogin(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	// 2. Valid account, but is it one of ours?
	member, err := s.memberForAccount(ctx, session.Account.ID)
	if err != nil {
		return LoginResult{}, err
	}

	log.Info("member logged in",
		slog.String("member_id", member.ID),
		slog.String("role", member.Role),
	)
	return LoginResult{Session: session, Member: member}, nil
}

// VerifyMember resolves a bearer token to its membership. Used on
// every authenticated dashboard request.
func (s *SessionService) VerifyMember(ctx context.Context, token string) (domain.Member, error) {
	account, err := s.Identity.AccountByToken(ctx, token)
	if err != nil {
		return domain.Member{}, err
	}
	return s.memberForAccount(ctx, account.ID)
}

func (s *SessionService) memberForAccount(ctx context.Context, accountID string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	member, err := s.Store.Members().GetMemberByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("authenticated account has no membership",
				slog.String("account_id", accountID),
			)
			return domain.Member{}, ErrNotTeamMember
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.Member{}, err
	}

	now := time.Now().UTC()
	if err := s.Store.Members().TouchLogin(ctx, member.ID, now); err != nil {
		log.Error("failed to refresh last login",
			slog.String("member_id", member.ID),
			slog.Any("error", err),
		)
		return domain.Member{}, err
	}
	member.LastLogin = &now
	member.IsActive = true

	return member, nil
}
