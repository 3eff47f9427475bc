package client

import (
	"context"
	"net/url"
)

func (c *Client) Friends(ctx context.Context) ([]User, error) {
	var body struct {
		Friends []User `json:"friends"`
	}
	if err := c.get(ctx, "/friends", nil, &body); err != nil {
		return nil, err
	}
	return body.Friends, nil
}

func (c *Client) IncomingFriendRequests(ctx context.Context) ([]FriendRequest, error) {
	var body struct {
		Requests []FriendRequest `json:"requests"`
	}
	if err := c.get(ctx, "/in-friend-requests", nil, &body); err != nil {
		return nil, err
	}
	return body.Requests, nil
}

func (c *Client) OutgoingFriendRequests(ctx context.Context) ([]FriendRequest, error) {
	var body struct {
		Requests []FriendRequest `json:"requests"`
	}
	if err := c.get(ctx, "/out-friend-requests", nil, &body); err != nil {
		return nil, err
	}
	return body.Requests, nil
}

func (c *Client) SendFriendRequest(ctx context.Context, username string) error {
	body := struct {
		Username string `json:"username"`
	}{Username: username}
	return c.post(ctx, "/send-friend-request", body, nil)
}

func (c *Client) AcceptFriendRequest(ctx context.Context, requestID uint) error {
	body := struct {
		RequestID uint `json:"request_id"`
	}{RequestID: requestID}
	return c.post(ctx, "/accept-friend-request", body, nil)
}

func (c *Client) DeclineFriendRequest(ctx context.Context, requestID uint) error {
	body := struct {
		RequestID uint `json:"request_id"`
	}{RequestID: requestID}
	return c.post(ctx, "/decline-friend-request", body, nil)
}

// FoundUser is one hit from fuzzy user search.
type FoundUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (c *Client) SearchUsers(ctx context.Context, username string) ([]FoundUser, error) {
	query := url.Values{}
	query.Set("username", username)

	var body struct {
		Users []FoundUser `json:"users"`
	}
	if err := c.get(ctx, "/search-users", query, &body); err != nil {
		return nil, err
	}
	return body.Users, nil
}
