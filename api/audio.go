package api

import "context"

// GetAudioPage lists parsed audio metadata one page at a time. The upload
// and parse transport itself is outside this client; only the display side
// of the metadata is exposed.
func (c *Client) GetAudioPage(ctx context.Context, q PageQuery) (*Page[AudioMeta], error) {
	var out Page[AudioMeta]
	if err := c.get(ctx, "/audio/page", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
