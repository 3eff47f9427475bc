package services

import (
	"errors"
	"unicode/utf8"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

const MaxCommentLength = 500

var (
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment must be at most 500 characters")
	ErrEmptyBatch      = errors.New("batch contains no ratings")
)

type RatingService struct {
	Ratings *repository.RatingRepository
	Friends *repository.FriendRepository
}

func NewRatingService(ratings *repository.RatingRepository, friends *repository.FriendRepository) *RatingService {
	return &RatingService{Ratings: ratings, Friends: friends}
}

func validateRating(score int, comment string) error {
	if score < 1 || score > 5 {
		return ErrScoreOutOfRange
	}
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// Submit stores one rating after re-validating the client-side rules.
func (s *RatingService) Submit(userID, dishID uint, score int, comment string) (*entity.Rating, error) {
	if err := validateRating(score, comment); err != nil {
		return nil, err
	}
	rating := &entity.Rating{
		UserID:  userID,
		DishID:  dishID,
		Score:   score,
		Comment: comment,
	}
	if err := s.Ratings.Create(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// SubmitBatch validates every rating up front, then stores the whole set
// in one transaction. No partial commits.
func (s *RatingService) SubmitBatch(userID uint, ratings []entity.Rating) error {
	if len(ratings) == 0 {
		return ErrEmptyBatch
	}
	for i := range ratings {
		if err := validateRating(ratings[i].Score, ratings[i].Comment); err != nil {
			return err
		}
		ratings[i].UserID = userID
	}
	return s.Ratings.CreateBatch(ratings)
}

func (s *RatingService) ForDish(dishID uint) ([]entity.Rating, error) {
	return s.Ratings.FindByDishID(dishID)
}

func (s *RatingService) ForUser(userID uint) ([]entity.Rating, error) {
	return s.Ratings.FindByUserID(userID)
}

// ForFriends returns the ratings submitted by all of a user's friends,
// newest first. An empty friend list yields an empty feed, not an error.
func (s *RatingService) ForFriends(userID uint) ([]entity.Rating, error) {
	friends, err := s.Friends.FriendsOf(userID)
	if err != nil {
		return nil, err
	}
	if len(friends) == 0 {
		return []entity.Rating{}, nil
	}
	ids := make([]uint, len(friends))
	for i, f := range friends {
		ids[i] = f.ID
	}
	return s.Ratings.FindByUserIDs(ids)
}
