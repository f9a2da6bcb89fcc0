package api

import (
	"context"
	"fmt"

	"github.com/linminwei/notion-hub-go/menu"
)

// GetUserMenuTree fetches the menu tree scoped server-side to the caller.
// The client derives its route-access list from this tree and performs no
// additional filtering; visibility is the backend's decision.
func (c *Client) GetUserMenuTree(ctx context.Context) ([]menu.Node, error) {
	var out []menu.Node
	if err := c.get(ctx, "/menu/user/tree", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenuTree fetches the full menu tree for management views.
func (c *Client) GetMenuTree(ctx context.Context) ([]menu.Node, error) {
	var out []menu.Node
	if err := c.get(ctx, "/menu/tree", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllMenus fetches every menu as a flat list.
func (c *Client) GetAllMenus(ctx context.Context) ([]menu.Node, error) {
	var out []menu.Node
	if err := c.get(ctx, "/menu/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMenu creates a menu entry.
func (c *Client) AddMenu(ctx context.Context, n menu.Node) error {
	return c.post(ctx, "/menu", n, nil)
}

// UpdateMenu updates a menu entry.
func (c *Client) UpdateMenu(ctx context.Context, n menu.Node) error {
	return c.put(ctx, "/menu", n, nil)
}

// DeleteMenu removes a menu entry by ID.
func (c *Client) DeleteMenu(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/menu/%d", id), nil)
}
