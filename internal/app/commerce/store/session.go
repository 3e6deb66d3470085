package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
	"github.com/megamart/commerce-core/internal/app/commerce/domain"
	"github.com/megamart/commerce-core/internal/pkg/clock"
)

// sessionTTL bounds how long a persisted token rehydrates as logged in.
const sessionTTL = 24 * time.Hour

// Session holds the current identity token and profile. Authentication
// itself is mocked (any email logs in); what is real here is the
// persistence lifecycle: login persists token and profile, logout erases
// them and fires hooks so session-scoped stores (the cart) erase
// themselves too. The wishlist registers no hook and survives logout.
type Session struct {
	log       zerolog.Logger
	persister contracts.Persister
	clock     clock.Clock
	secret    []byte

	token string
	user  *domain.User

	logoutHooks []func(context.Context)
	notifier
}

// NewSession creates a session store rehydrated from durable storage. A
// persisted token that fails verification (malformed, expired, wrong
// signature) is discarded and the store starts logged out.
func NewSession(ctx context.Context, persister contracts.Persister, secret string, clk clock.Clock, log zerolog.Logger) *Session {
	s := &Session{
		log:       log,
		persister: persister,
		clock:     clk,
		secret:    []byte(secret),
	}
	s.rehydrate(ctx)
	return s
}

// OnLogout registers fn to run whenever the session is destroyed.
func (s *Session) OnLogout(fn func(context.Context)) {
	s.logoutHooks = append(s.logoutHooks, fn)
}

// Login creates a session for the given identity: mints a signed token,
// builds the profile and persists both. Credentials are not verified
// beyond a non-empty email.
func (s *Session) Login(ctx context.Context, email, name string) (domain.User, error) {
	if email == "" {
		return domain.User{}, domain.ErrEmptyEmail
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	token, err := s.mintToken(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to mint session token: %w", err)
	}

	s.token = token
	s.user = &user

	if err := s.persister.Set(ctx, KeyToken, []byte(token)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session token")
	}
	s.persistUser(ctx)
	s.notify()
	return user, nil
}

// Logout destroys the session: in-memory identity and the persisted
// token/profile keys are erased and logout hooks run. The cart registers
// a hook that erases itself; no-op when already logged out.
func (s *Session) Logout(ctx context.Context) {
	if s.token == "" && s.user == nil {
		return
	}
	s.token = ""
	s.user = nil
	if err := s.persister.Delete(ctx, KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("failed to erase persisted token")
	}
	if err := s.persister.Delete(ctx, KeyUser); err != nil {
		s.log.Warn().Err(err).Msg("failed to erase persisted profile")
	}
	for _, fn := range s.logoutHooks {
		fn(ctx)
	}
	s.notify()
}

// UpdateProfile merges a partial profile change into the current user and
// re-persists it. Returns domain.ErrNotLoggedIn without a session.
func (s *Session) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	if s.user == nil {
		return domain.ErrNotLoggedIn
	}
	updated := s.user.Apply(update)
	s.user = &updated
	s.persistUser(ctx)
	s.notify()
	return nil
}

// LoggedIn reports whether a session is active.
func (s *Session) LoggedIn() bool { return s.token != "" }

// Token returns the opaque session token, or "" when logged out.
func (s *Session) Token() string { return s.token }

// User returns a copy of the current profile.
func (s *Session) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	u := *s.user
	u.Addresses = append([]domain.Address(nil), s.user.Addresses...)
	return u, true
}

func (s *Session) mintToken(user domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// verifyToken checks signature and expiry against the injected clock.
func (s *Session) verifyToken(tokenStr string) error {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tok.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}

func (s *Session) persistUser(ctx context.Context) {
	raw, err := json.Marshal(s.user)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode profile")
		return
	}
	if err := s.persister.Set(ctx, KeyUser, raw); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist profile")
	}
}

func (s *Session) rehydrate(ctx context.Context) {
	raw, err := s.persister.Get(ctx, KeyToken)
	if errors.Is(err, contracts.ErrKeyMissing) {
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read persisted token, starting logged out")
		return
	}
	token := string(raw)
	if err := s.verifyToken(token); err != nil {
		s.log.Warn().Err(err).Msg("discarding invalid persisted token")
		_ = s.persister.Delete(ctx, KeyToken)
		_ = s.persister.Delete(ctx, KeyUser)
		return
	}
	s.token = token

	userRaw, err := s.persister.Get(ctx, KeyUser)
	if err != nil {
		if !errors.Is(err, contracts.ErrKeyMissing) {
			s.log.Warn().Err(err).Msg("failed to read persisted profile")
		}
		return
	}
	var user domain.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		s.log.Warn().Err(err).Msg("malformed persisted profile, dropping it")
		_ = s.persister.Delete(ctx, KeyUser)
		return
	}
	s.user = &user
}
