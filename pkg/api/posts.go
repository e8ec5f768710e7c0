package api

import (
	"context"
	"fmt"
)

// Post is a jsonplaceholder post.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Post fetches /posts/{id}. The HTTP status is returned alongside the post.
func (c *Client) Post(ctx context.Context, id int) (*Post, int, error) {
	var p Post
	status, err := c.getJSON(ctx, fmt.Sprintf("/posts/%d", id), nil, &p)
	if err != nil {
		return nil, status, err
	}
	return &p, status, nil
}
