package api

import "context"

// Login exchanges credentials for a bearer token and the initial
// authorization data.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new console account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/auth/register", req, nil)
}

// GetCurrentUser fetches the caller's full profile, including the
// authoritative role and permission sets.
func (c *Client) GetCurrentUser(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.get(ctx, "/auth/current", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
