package api

import (
	"context"
	"fmt"
)

// GetDictTypePage lists dictionary types one page at a time.
func (c *Client) GetDictTypePage(ctx context.Context, q PageQuery) (*Page[DictType], error) {
	var out Page[DictType]
	if err := c.get(ctx, "/dict/type/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllDictTypes lists every dictionary type without pagination.
func (c *Client) GetAllDictTypes(ctx context.Context) ([]DictType, error) {
	var out []DictType
	if err := c.get(ctx, "/dict/type/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDictTypeByCode looks a dictionary type up by its code.
func (c *Client) GetDictTypeByCode(ctx context.Context, code string) (*DictType, error) {
	var out DictType
	if err := c.get(ctx, "/dict/type/code/"+code, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDictType creates a dictionary type.
func (c *Client) AddDictType(ctx context.Context, dt DictType) error {
	return c.post(ctx, "/dict/type", dt, nil)
}

// UpdateDictType updates a dictionary type.
func (c *Client) UpdateDictType(ctx context.Context, dt DictType) error {
	return c.put(ctx, "/dict/type", dt, nil)
}

// DeleteDictType removes a dictionary type by ID.
func (c *Client) DeleteDictType(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/dict/type/%d", id), nil)
}

// GetDictItemsByType lists every item of a dictionary type.
func (c *Client) GetDictItemsByType(ctx context.Context, dictTypeID int64) ([]DictItem, error) {
	var out []DictItem
	if err := c.get(ctx, fmt.Sprintf("/dict/item/type/%d", dictTypeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDictItemPage lists dictionary items one page at a time.
func (c *Client) GetDictItemPage(ctx context.Context, q PageQuery) (*Page[DictItem], error) {
	var out Page[DictItem]
	if err := c.get(ctx, "/dict/item/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDictItem creates a dictionary item.
func (c *Client) AddDictItem(ctx context.Context, it DictItem) error {
	return c.post(ctx, "/dict/item", it, nil)
}

// UpdateDictItem updates a dictionary item.
func (c *Client) UpdateDictItem(ctx context.Context, it DictItem) error {
	return c.put(ctx, "/dict/item", it, nil)
}

// DeleteDictItem removes a dictionary item by ID.
func (c *Client) DeleteDictItem(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/dict/item/%d", id), nil)
}

// BatchDeleteDictItems removes several dictionary items in one call.
func (c *Client) BatchDeleteDictItems(ctx context.Context, ids []int64) error {
	return c.del(ctx, "/dict/item/batch", ids)
}
