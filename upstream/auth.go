package upstream

import (
	"context"

	"hotel_gateway/model"
)

// LoginResult is the upstream /login payload: a bearer token plus profile.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, input model.LoginInput) (*LoginResult, error) {
	var result LoginResult
	if err := c.postJSON(ctx, "/login", "", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, input model.RegisterInput) error {
	return c.postJSON(ctx, "/register", "", input, nil)
}
