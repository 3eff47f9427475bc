package repository

import (
	"errors"

	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

var (
	ErrRequestExists = errors.New("friend request already exists")
	ErrSelfRequest   = errors.New("cannot send a friend request to yourself")
)

type FriendRepository struct {
	DB *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{DB: db}
}

// FriendsOf returns every user on the other side of a friendship row.
// Friendships store the lower ID first, so both columns are checked.
func (r *FriendRepository) FriendsOf(userID uint) ([]entity.User, error) {
	var friends []entity.User
	err := r.DB.Raw(`
		SELECT DISTINCT u.* FROM users u
		JOIN friendships f ON (
			(f.user_id = ? AND f.friend_id = u.id) OR
			(f.friend_id = ? AND f.user_id = u.id)
		)
		WHERE u.id != ?
	`, userID, userID, userID).Scan(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *FriendRepository) OutgoingRequests(userID uint) ([]entity.FriendRequest, error) {
	var requests []entity.FriendRequest
	err := r.DB.Preload("ToUser").
		Where("from_id = ?", userID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *FriendRepository) IncomingRequests(userID uint) ([]entity.FriendRequest, error) {
	var requests []entity.FriendRequest
	err := r.DB.Preload("FromUser").
		Where("to_id = ?", userID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// SendRequest creates a pending request unless one already exists in
// either direction.
func (r *FriendRepository) SendRequest(fromID, toID uint) error {
	if fromID == toID {
		return ErrSelfRequest
	}

	var existing entity.FriendRequest
	err := r.DB.Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
		fromID, toID, toID, fromID).
		First(&existing).Error
	if err == nil {
		return ErrRequestExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	request := entity.FriendRequest{
		FromID: fromID,
		ToID:   toID,
		Status: entity.FriendRequestPending,
	}
	return r.DB.Create(&request).Error
}

func (r *FriendRepository) FindRequest(requestID uint) (*entity.FriendRequest, error) {
	var request entity.FriendRequest
	if err := r.DB.First(&request, requestID).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Accept creates the friendship and removes the request in one
// transaction.
func (r *FriendRepository) Accept(requestID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var request entity.FriendRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}

		userID, friendID := request.FromID, request.ToID
		if userID > friendID {
			userID, friendID = friendID, userID
		}
		friendship := entity.Friendship{UserID: userID, FriendID: friendID}
		if err := tx.Create(&friendship).Error; err != nil {
			return err
		}

		return tx.Delete(&entity.FriendRequest{}, requestID).Error
	})
}

// Decline just removes the request; nothing is materialized.
func (r *FriendRepository) Decline(requestID uint) error {
	return r.DB.Delete(&entity.FriendRequest{}, requestID).Error
}
