package services

import (
	"errors"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

var ErrNotYourRequest = errors.New("request is not addressed to you")

type FriendService struct {
	Friends *repository.FriendRepository
}

func NewFriendService(friends *repository.FriendRepository) *FriendService {
	return &FriendService{Friends: friends}
}

func (s *FriendService) List(userID uint) ([]entity.User, error) {
	return s.Friends.FriendsOf(userID)
}

func (s *FriendService) Incoming(userID uint) ([]entity.FriendRequest, error) {
	return s.Friends.IncomingRequests(userID)
}

func (s *FriendService) Outgoing(userID uint) ([]entity.FriendRequest, error) {
	return s.Friends.OutgoingRequests(userID)
}

func (s *FriendService) Send(fromID, toID uint) error {
	return s.Friends.SendRequest(fromID, toID)
}

// Accept materializes the friendship. Only the recipient may accept.
func (s *FriendService) Accept(userID, requestID uint) error {
	request, err := s.Friends.FindRequest(requestID)
	if err != nil {
		return err
	}
	if request.ToID != userID {
		return ErrNotYourRequest
	}
	return s.Friends.Accept(requestID)
}

// Decline removes the request. Only the recipient may decline.
func (s *FriendService) Decline(userID, requestID uint) error {
	request, err := s.Friends.FindRequest(requestID)
	if err != nil {
		return err
	}
	if request.ToID != userID {
		return ErrNotYourRequest
	}
	return s.Friends.Decline(requestID)
}
