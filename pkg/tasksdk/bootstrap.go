package tasksdk

import (
	"context"
	"net/http"
)

// Bootstrap creates the first administrator on an empty service.
func (c *Client) Bootstrap(
	ctx context.Context,
	token string,
	req BootstrapRequest,
) (*BootstrapResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/v1/bootstrap", req, map[string]string{
		"X-Bootstrap-Token": token,
	})
	if err != nil {
		return nil, err
	}

	out, err := decodeData[BootstrapResponse](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
