package api

import (
	"context"
	"net/url"
)

// Address is one zipcloud search result.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Address3 string `json:"address3"`
	Kana1    string `json:"kana1"`
	Kana2    string `json:"kana2"`
	Kana3    string `json:"kana3"`
	PrefCode string `json:"prefcode"`
	Zipcode  string `json:"zipcode"`
}

// ZipResponse is the zipcloud search envelope.
//
// The API answers HTTP 200 even for bad input; Status carries the real
// result (200 or 400) and Message explains a 400. Results is nil when the
// zipcode does not exist.
type ZipResponse struct {
	Status  int       `json:"status"`
	Message *string   `json:"message"`
	Results []Address `json:"results"`
}

// SearchZip looks up a zipcode via /api/search.
func (c *Client) SearchZip(ctx context.Context, zipcode string) (*ZipResponse, int, error) {
	var zr ZipResponse
	status, err := c.getJSON(ctx, "/api/search", url.Values{"zipcode": {zipcode}}, &zr)
	if err != nil {
		return nil, status, err
	}
	return &zr, status, nil
}
