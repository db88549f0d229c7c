package service

import (
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// Session is what every credential-issuing operation hands back.
type Session struct {
	User  domain.User
	Token string
}

// TokenIssuer signs session tokens for users.
type TokenIssuer struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (t *TokenIssuer) ttl() time.Duration {
	if t.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return t.TTL
}

// Issue signs a token for u, issued at now.
func (t *TokenIssuer) Issue(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewSessionClaims(u.ID.String(), string(u.Role), t.Issuer, t.ttl(), now)
	return t.Signer.Sign(claims)
}

func (t *TokenIssuer) session(u domain.User, now time.Time) (Session, error) {
	token, err := t.Issue(u, now)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: token}, nil
}

// Clock returns the current time. A nil Clock is the wall clock.
type Clock func() time.Time

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
