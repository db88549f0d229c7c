package tasksdk

import (
	"context"
	"net/http"
)

// Me returns the authenticated user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/users/me", nil)
	if err != nil {
		return nil, err
	}
	u, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword changes the caller's password. The session switches to the
// reissued token, since the old one stops working.
func (s *Session) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/api/v1/users/updatepassword", req)
	if err != nil {
		return err
	}
	out, err := decodeData[SessionResponse](resp, http.StatusOK)
	if err != nil {
		return err
	}
	s.replace(out)
	return nil
}
