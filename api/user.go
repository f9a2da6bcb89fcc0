package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (q PageQuery) values() url.Values {
	v := url.Values{}
	if q.Current > 0 {
		v.Set("current", strconv.Itoa(q.Current))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	for key, val := range q.Extra {
		v.Set(key, val)
	}
	return v
}

// GetUserPage lists users one page at a time.
func (c *Client) GetUserPage(ctx context.Context, q PageQuery) (*Page[User], error) {
	var out Page[User]
	if err := c.get(ctx, "/user/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddUser creates a user.
func (c *Client) AddUser(ctx context.Context, u User) error {
	return c.post(ctx, "/user", u, nil)
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, u User) error {
	return c.put(ctx, "/user", u, nil)
}

// DeleteUser removes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/user/%d", id), nil)
}

// GetUserRoles lists the roles assigned to a user.
func (c *Client) GetUserRoles(ctx context.Context, userID int64) ([]RoleRef, error) {
	var out []RoleRef
	if err := c.get(ctx, fmt.Sprintf("/user/%d/roles", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignUserRoles replaces a user's role assignments.
func (c *Client) AssignUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	return c.post(ctx, fmt.Sprintf("/user/%d/roles", userID), roleIDs, nil)
}

// ResetUserPassword resets another user's password (admin operation).
func (c *Client) ResetUserPassword(ctx context.Context, userID int64, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.put(ctx, fmt.Sprintf("/user/%d/reset-password", userID), body, nil)
}

// ChangePassword changes the caller's own password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.put(ctx, "/user/change-password", body, nil)
}

// UpdateOwnInfo updates the caller's profile fields.
func (c *Client) UpdateOwnInfo(ctx context.Context, p UserProfile) error {
	return c.put(ctx, "/user/update-info", p, nil)
}
