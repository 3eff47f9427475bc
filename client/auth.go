package client

import "context"

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and stores it on the session.
// The identifier may be a username or an email.
func (c *Client) Login(ctx context.Context, identifier, password string) (*User, error) {
	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	err := c.post(ctx, "/login", credentials{Username: identifier, Password: password}, &body)
	if err != nil {
		return nil, err
	}
	c.Session.SetToken(body.Token)
	return &body.User, nil
}

// Signup registers a new account and logs it in.
func (c *Client) Signup(ctx context.Context, username, email, password string) (*User, error) {
	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	err := c.post(ctx, "/signup", credentials{Username: username, Email: email, Password: password}, &body)
	if err != nil {
		return nil, err
	}
	c.Session.SetToken(body.Token)
	return &body.User, nil
}

// Logout drops the token. The server side is stateless, so local cleanup
// is all that matters.
func (c *Client) Logout(ctx context.Context) {
	_ = c.post(ctx, "/logout", nil, nil)
	c.Session.Clear()
}

func (c *Client) UserInfo(ctx context.Context) (*User, error) {
	var body struct {
		User User `json:"user"`
	}
	if err := c.get(ctx, "/userinfo", nil, &body); err != nil {
		return nil, err
	}
	return &body.User, nil
}

type profileUpdate struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// UpdateProfile changes username/email and optionally uploads a base64
// profile picture.
func (c *Client) UpdateProfile(ctx context.Context, username, email string, pictureB64 *string) (*User, error) {
	var body struct {
		User User `json:"user"`
	}
	err := c.put(ctx, "/profile", profileUpdate{Username: username, Email: email, ProfilePicture: pictureB64}, &body)
	if err != nil {
		return nil, err
	}
	return &body.User, nil
}
