package api

import "context"

// GetDatasourcePage lists configured Notion datasources one page at a time.
func (c *Client) GetDatasourcePage(ctx context.Context, q PageQuery) (*Page[Datasource], error) {
	var out Page[Datasource]
	if err := c.get(ctx, "/notion/datasource/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDatasource registers a Notion datasource.
func (c *Client) AddDatasource(ctx context.Context, ds Datasource) error {
	return c.post(ctx, "/notion/datasource", ds, nil)
}

// UpdateDatasource updates a Notion datasource.
func (c *Client) UpdateDatasource(ctx context.Context, ds Datasource) error {
	return c.put(ctx, "/notion/datasource", ds, nil)
}
