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
	"github.com/nextnukkad/team-dashboard/pkg/idx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var (
	ErrInvalidSignupRequest = errors.New("invalid signup request")
	ErrAlreadyRegistered    = errors.New("email is already registered as a team member")
	ErrIdentityCreate       = errors.New("failed to create identity account")
	ErrPersist              = errors.New("failed to persist team membership")
)

// SignupRequest carries everything needed to complete a signup after
// the applicant has received their code.
type SignupRequest struct {
	Email    string
	Code     string
	Password string
	Name     string
	Role     string
	TeamKey  string
}

// SignupService orchestrates new team-member registration: OTP proof
// of mailbox ownership, team key reservation, identity account
// creation and the membership record. The flow is stateless; progress
// lives entirely in which rows exist, and a client that failed partway
// re-drives the sequence.
type SignupService struct {
	Store    store.Store
	OTP      *OTPService
	TeamKeys *TeamKeyService
	Identity identity.Gateway
}

// RequestCode starts a signup by emailing a verification code.
// Refuses emails that already belong to a member, without sending.
func (s *SignupService) RequestCode(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Already-registered emails never get a signup code.
	_, err := s.Store.Members().GetMemberByEmail(ctx, email)
	if err == nil {
		log.Warn("signup code requested for registered email")
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check membership", slog.Any("error", err))
		return err
	}

	// 2. Issue handles domain validation and delivery.
	return s.OTP.Issue(ctx, email, domain.PurposeCreate)
}

// Complete finishes a signup. Ordering is deliberate: the local,
// compensatable key reservation happens before the external identity
// call, so the only irreversible step runs last.
func (s *SignupService) Complete(ctx context.Context, req SignupRequest) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Code == "" || req.Password == "" ||
		req.Name == "" || req.Role == "" || req.TeamKey == "" {
		return domain.Member{}, ErrInvalidSignupRequest
	}

	// 2. Prove mailbox ownership. Consumes the code on success.
	if err := s.OTP.Verify(ctx, req.Email, req.Code, domain.PurposeCreate); err != nil {
		return domain.Member{}, err
	}

	// 3. Reserve a team key use.
	key, err := s.TeamKeys.Reserve(ctx, req.TeamKey)
	if err != nil {
		return domain.Member{}, err
	}

	// 4. Create the identity account, pre-confirmed. OTP already
	// proved the mailbox so no confirmation email fires.
	account, err := s.Identity.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		s.compensate(ctx, key.ID)
		if errors.Is(err, identity.ErrAccountExists) {
			return domain.Member{}, ErrAlreadyRegistered
		}
		log.Error("identity account creation failed", slog.Any("error", err))
		return domain.Member{}, errors.Join(ErrIdentityCreate, err)
	}

	// 5. Record the membership and attribute the key to its first
	// consumer, atomically.
	member := domain.Member{
		ID:          idx.New().String(),
		AccountID:   account.ID,
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		TeamKeyUsed: key.ID,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			return err
		}
		return tx.TeamKeys().SetCreatedByIfUnset(ctx, key.ID, account.ID)
	})
	if err != nil {
		s.compensate(ctx, key.ID)
		// The identity account now exists without a membership row.
		// There is no delete on the gateway surface; the orphan is
		// harmless (login still fails the membership check) but worth
		// a loud log line.
		log.Error("membership persistence failed after identity creation",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrAlreadyRegistered
		}
		return domain.Member{}, errors.Join(ErrPersist, err)
	}

	log.Info("team member registered",
		slog.String("member_id", member.ID),
		slog.String("role", member.Role),
		slog.String("key_id", key.ID),
	)
	return member, nil
}

// compensate releases a reserved key use. Failure is logged, not
// returned; the caller is already propagating the primary error.
func (s *SignupService) compensate(ctx context.Context, keyID string) {
	if err := s.TeamKeys.Release(ctx, keyID); err != nil {
		slogx.FromContext(ctx).Error("key release compensation failed",
			slog.String("key_id", keyID),
			slog.Any("error", err),
		)
	}
}
