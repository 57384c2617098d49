package upstream

import (
	"context"
	"net/url"

	"hotel_gateway/model"
)

func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
	var resp struct {
		Data []model.Room `json:"data"`
	}
	if err := c.getJSON(ctx, "/rooms", "", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetRoomBySlug(ctx context.Context, slug string) (*model.Room, error) {
	var resp struct {
		Data model.Room `json:"data"`
	}
	if err := c.getJSON(ctx, "/rooms/"+url.PathEscape(slug), "", &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
