package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the taskboard service. It covers the public
// endpoints and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new taskboard client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a regular user and returns their session.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/signup", req, nil)
	if err != nil {
		return nil, err
	}
	out, err := decodeData[SessionResponse](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return c.NewSession(out.Token, out.User), nil
}

// Login exchanges an email and password for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	out, err := decodeData[SessionResponse](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.NewSession(out.Token, out.User), nil
}

// NewSession wraps an existing token, e.g. one persisted by the caller.
func (c *Client) NewSession(token string, user User) *Session {
	return &Session{client: c, token: token, user: user}
}
