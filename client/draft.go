package client

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// MaxCommentLength is the longest comment a rating may carry.
const MaxCommentLength = 500

var (
	ErrMissingRating   = errors.New("provide a rating for all selected dishes")
	ErrScoreNotInteger = errors.New("score must be a whole number")
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment must be at most 500 characters")
)

// DraftReview is the in-progress rating for one dish. The rating is kept
// as the raw field text until submission, when it must parse to an
// integer in [1,5].
type DraftReview struct {
	Rating  string
	Comment string
}

// ReviewDraft accumulates dish selections and their in-progress reviews.
// Selections behave as a set, and review entries never outlive their
// dish's selection.
type ReviewDraft struct {
	order    []uint
	selected map[uint]bool
	reviews  map[uint]DraftReview
}

func NewReviewDraft() *ReviewDraft {
	return &ReviewDraft{
		selected: make(map[uint]bool),
		reviews:  make(map[uint]DraftReview),
	}
}

// Select adds a dish to the draft. Re-selecting is a no-op.
func (d *ReviewDraft) Select(dishID uint) {
	if d.selected[dishID] {
		return
	}
	d.selected[dishID] = true
	d.order = append(d.order, dishID)
}

// Deselect removes a dish and its review entry, if any.
func (d *ReviewDraft) Deselect(dishID uint) {
	if !d.selected[dishID] {
		return
	}
	delete(d.selected, dishID)
	delete(d.reviews, dishID)
	for i, id := range d.order {
		if id == dishID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Toggle flips a dish's selection.
func (d *ReviewDraft) Toggle(dishID uint) {
	if d.selected[dishID] {
		d.Deselect(dishID)
	} else {
		d.Select(dishID)
	}
}

func (d *ReviewDraft) IsSelected(dishID uint) bool {
	return d.selected[dishID]
}

// Selected returns the dish ids in selection order.
func (d *ReviewDraft) Selected() []uint {
	out := make([]uint, len(d.order))
	copy(out, d.order)
	return out
}

func (d *ReviewDraft) Len() int {
	return len(d.order)
}

// SetReview records the in-progress rating and comment for a selected
// dish. Writing to an unselected dish is ignored so review entries stay
// a subset of the selection.
func (d *ReviewDraft) SetReview(dishID uint, rating, comment string) {
	if !d.selected[dishID] {
		return
	}
	d.reviews[dishID] = DraftReview{Rating: rating, Comment: comment}
}

func (d *ReviewDraft) Review(dishID uint) (DraftReview, bool) {
	review, ok := d.reviews[dishID]
	return review, ok
}

// Complete reports whether every selected dish has a non-empty rating.
func (d *ReviewDraft) Complete() bool {
	for _, id := range d.order {
		if d.reviews[id].Rating == "" {
			return false
		}
	}
	return len(d.order) > 0
}

// Submissions validates the whole draft in selection order and returns
// the wire-ready tuples. Any violation aborts with an error naming the
// dish; nothing is partially validated.
func (d *ReviewDraft) Submissions() ([]RatingSubmission, error) {
	if !d.Complete() {
		return nil, ErrMissingRating
	}

	submissions := make([]RatingSubmission, 0, len(d.order))
	for _, id := range d.order {
		review := d.reviews[id]
		score, err := strconv.Atoi(review.Rating)
		if err != nil {
			return nil, fmt.Errorf("dish %d: %w", id, ErrScoreNotInteger)
		}
		if score < 1 || score > 5 {
			return nil, fmt.Errorf("dish %d: %w", id, ErrScoreOutOfRange)
		}
		if utf8.RuneCountInString(review.Comment) > MaxCommentLength {
			return nil, fmt.Errorf("dish %d: %w", id, ErrCommentTooLong)
		}
		submissions = append(submissions, RatingSubmission{
			DishID:  id,
			Score:   score,
			Comment: review.Comment,
		})
	}
	return submissions, nil
}
