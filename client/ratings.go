package client

import (
	"context"
	"net/url"
	"strconv"
)

// RatingSubmission is one validated (dish, score, comment) tuple ready
// for the wire.
type RatingSubmission struct {
	DishID  uint   `json:"dish_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// SubmitRating posts a single rating.
func (c *Client) SubmitRating(ctx context.Context, submission RatingSubmission) error {
	return c.post(ctx, "/ratings", submission, nil)
}

// SubmitRatingsBatch posts a set of ratings that the server commits
// atomically. The wizard's sequential path does not use this; it exists
// for callers that want all-or-nothing semantics.
func (c *Client) SubmitRatingsBatch(ctx context.Context, submissions []RatingSubmission) error {
	body := struct {
		Ratings []RatingSubmission `json:"ratings"`
	}{Ratings: submissions}
	return c.post(ctx, "/ratings/batch", body, nil)
}

// DishRatings lists every rating for one dish, newest first.
func (c *Client) DishRatings(ctx context.Context, dishID uint) ([]Rating, error) {
	query := url.Values{}
	query.Set("dish_id", strconv.FormatUint(uint64(dishID), 10))

	var ratings []Rating
	if err := c.get(ctx, "/dishratings", query, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// MyRatings lists the authenticated user's ratings.
func (c *Client) MyRatings(ctx context.Context) ([]Rating, error) {
	var ratings []Rating
	if err := c.get(ctx, "/userratings", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// UserRatings lists another user's ratings by username.
func (c *Client) UserRatings(ctx context.Context, username string) ([]Rating, error) {
	var ratings []Rating
	if err := c.get(ctx, "/userratings/"+url.PathEscape(username), nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// FriendRatings lists the ratings of everyone the user is friends with.
func (c *Client) FriendRatings(ctx context.Context) ([]Rating, error) {
	var ratings []Rating
	if err := c.get(ctx, "/friendratings", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetDish fetches one dish's metadata.
func (c *Client) GetDish(ctx context.Context, dishID uint) (*Dish, error) {
	var body struct {
		Dish Dish `json:"dish"`
	}
	if err := c.get(ctx, "/dish/"+strconv.FormatUint(uint64(dishID), 10), nil, &body); err != nil {
		return nil, err
	}
	return &body.Dish, nil
}

// DiningHalls lists every hall with its aggregate rating.
func (c *Client) DiningHalls(ctx context.Context) ([]DiningHall, error) {
	var body struct {
		DiningHalls []DiningHall `json:"dining_halls"`
	}
	if err := c.get(ctx, "/dining-halls", nil, &body); err != nil {
		return nil, err
	}
	return body.DiningHalls, nil
}

// Recommended returns the top halls for the user right now. An empty
// slice means nothing is being served.
func (c *Client) Recommended(ctx context.Context) ([]HallRecommendation, error) {
	var body struct {
		Halls []HallRecommendation `json:"halls"`
	}
	if err := c.get(ctx, "/recommended", nil, &body); err != nil {
		return nil, err
	}
	return body.Halls, nil
}
