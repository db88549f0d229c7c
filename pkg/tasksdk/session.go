package tasksdk

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated client. Operations that reissue the token
// (such as UpdatePassword) update the session in place, so a Session is
// safe to share between goroutines.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  User
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the user as of the last token issue.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) replace(out SessionResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = out.Token
	s.user = out.User
}

// Logout clears the server-side cookie. The bearer token itself stays valid
// until it expires.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
