package api

import (
	"context"
	"fmt"
)

// GetRolePage lists roles one page at a time.
func (c *Client) GetRolePage(ctx context.Context, q PageQuery) (*Page[Role], error) {
	var out Page[Role]
	if err := c.get(ctx, "/role/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllRoles lists every role without pagination.
func (c *Client) GetAllRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := c.get(ctx, "/role/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddRole creates a role.
func (c *Client) AddRole(ctx context.Context, r Role) error {
	return c.post(ctx, "/role", r, nil)
}

// UpdateRole updates a role.
func (c *Client) UpdateRole(ctx context.Context, r Role) error {
	return c.put(ctx, "/role", r, nil)
}

// DeleteRole removes a role by ID.
func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/role/%d", id), nil)
}

// AssignRoleMenus replaces the menu grants of a role.
func (c *Client) AssignRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	return c.post(ctx, fmt.Sprintf("/role/%d/permissions", roleID), menuIDs, nil)
}

// GetRoleMenuIDs lists the menu IDs already granted to a role.
func (c *Client) GetRoleMenuIDs(ctx context.Context, roleID int64) ([]int64, error) {
	var out []int64
	if err := c.get(ctx, fmt.Sprintf("/role/%d/menuIds", roleID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
