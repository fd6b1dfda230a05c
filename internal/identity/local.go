package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/cryptox"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

const localIssuer = "team-dashboard"

// Local is a store-backed identity provider. Accounts live in the
// dashboard's own database, passwords are argon2id hashed and sessions
// are HS256 JWTs. Selected when no external identity URL is
// configured.
type Local struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewLocal(st store.Store, secret []byte, tokenTTL time.Duration) *Local {
	return &Local{
		store:    st,
		secret:   secret,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (l *Local) CreateAccount(ctx context.Context, email, password, name string) (Account, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Account{}, fmt.Errorf("identity: hash password: %w", err)
	}

	now := l.now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Confirmed:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := l.store.Accounts().CreateAccount(ctx, acct); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Account{}, ErrAccountExists
		}
		return Account{}, fmt.Errorf("identity: create account: %w", err)
	}
	return Account{ID: acct.ID, Email: acct.Email}, nil
}

func (l *Local) PasswordLogin(ctx context.Context, email, password string) (Session, error) {
	acct, err := l.store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("identity: lookup account: %w", err)
	}

	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := l.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    localIssuer,
		Subject:   acct.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(l.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(l.secret)
	if err != nil {
		return Session{}, fmt.Errorf("identity: sign token: %w", err)
	}

	return Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(l.tokenTTL.Seconds()),
		Account:     Account{ID: acct.ID, Email: acct.Email},
	}, nil
}

func (l *Local) AccountByToken(ctx context.Context, token string) (Account, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return l.secret, nil
	}, jwt.WithIssuer(localIssuer), jwt.WithTimeFunc(l.now))
	if err != nil || !parsed.Valid {
		return Account{}, ErrInvalidToken
	}

	acct, err := l.store.Accounts().GetAccountByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Account{}, ErrInvalidToken
		}
		return Account{}, fmt.Errorf("identity: lookup account: %w", err)
	}
	return Account{ID: acct.ID, Email: acct.Email}, nil
}

func (l *Local) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("identity: hash password: %w", err)
	}
	if err := l.store.Accounts().UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return fmt.Errorf("identity: update password: %w", err)
	}
	return nil
}
