package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the Client's HTTP client.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON marshals payload (when non-nil) as the request body.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	payload any,
	headers map[string]string,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
		if headers == nil {
			headers = map[string]string{}
		}
		headers["Content-Type"] = "application/json"
	}
	return c.doRequest(ctx, method, path, body, headers)
}

// doAuthRequest performs a request carrying the session's bearer token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	return s.client.doJSON(ctx, method, path, payload, map[string]string{
		"Authorization": "Bearer " + s.Token(),
	})
}

// decodeEnvelope reads the whole envelope of a response.
// Returns an APIError if the status is not the expected one.
func decodeEnvelope[T any](resp *http.Response, expectedStatus int) (Response[T], error) {
	defer resp.Body.Close()

	var env Response[T]
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return env, parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return env, fmt.Errorf("failed to decode response: %w", err)
	}
	return env, nil
}

// decodeData returns just the data member of the envelope.
func decodeData[T any](resp *http.Response, expectedStatus int) (T, error) {
	env, err := decodeEnvelope[T](resp, expectedStatus)
	return env.Data, err
}

// checkStatus drains resp and returns a typed error unless it has the
// expected status.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
