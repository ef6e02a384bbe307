package friendservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/splittr/splittr/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockFriendRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	friendRepo := NewMockFriendRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(friendRepo, userRepo)
	defer ctrl.Finish()
	return service, friendRepo, userRepo
}

func TestSendRequest(t *testing.T) {
	service, friendRepo, userRepo := NewMock(t)

	tests := []struct {
		name          string
		senderID      int
		receiverID    int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful request",
			senderID:   1,
			receiverID: 2,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				friendRepo.EXPECT().FindFriendshipBetween(gomock.Any(), 1, 2).Return(nil, nil)
				friendRepo.EXPECT().FindRequestBetween(gomock.Any(), 1, 2).Return(nil, nil)
				friendRepo.EXPECT().CreateRequest(gomock.Any(), 1, 2).
					Return(&domain.FriendRequest{ID: 1, SenderID: 1, ReceiverID: 2, Status: domain.FriendRequestPending}, nil)
			},
		},
		{
			name:          "Request to self rejected",
			senderID:      1,
			receiverID:    1,
			prepareMock:   func() {},
			expectedError: ErrSelfRequest,
		},
		{
			name:       "Unknown receiver rejected",
			senderID:   1,
			receiverID: 99,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:       "Already friends rejected",
			senderID:   1,
			receiverID: 2,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				friendRepo.EXPECT().FindFriendshipBetween(gomock.Any(), 1, 2).
					Return(&domain.Friendship{ID: 1, User1ID: 1, User2ID: 2}, nil)
			},
			expectedError: ErrAlreadyFriends,
		},
		{
			name:       "Pending request in opposite direction rejected",
			senderID:   1,
			receiverID: 2,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				friendRepo.EXPECT().FindFriendshipBetween(gomock.Any(), 1, 2).Return(nil, nil)
				friendRepo.EXPECT().FindRequestBetween(gomock.Any(), 1, 2).
					Return(&domain.FriendRequest{ID: 3, SenderID: 2, ReceiverID: 1}, nil)
			},
			expectedError: ErrRequestPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			request, err := service.SendRequest(context.Background(), tt.senderID, tt.receiverID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, domain.FriendRequestPending, request.Status)
			}
		})
	}
}

func TestAcceptRequest(t *testing.T) {
	service, friendRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		receiverID    int
		requestID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful accept",
			receiverID: 2,
			requestID:  1,
			prepareMock: func() {
				request := &domain.FriendRequest{ID: 1, SenderID: 1, ReceiverID: 2}
				friendRepo.EXPECT().GetRequestByID(gomock.Any(), 1).Return(request, nil)
				friendRepo.EXPECT().AcceptRequest(gomock.Any(), request).
					Return(&domain.Friendship{ID: 1, User1ID: 1, User2ID: 2}, nil)
			},
		},
		{
			name:       "Missing request rejected",
			receiverID: 2,
			requestID:  9,
			prepareMock: func() {
				friendRepo.EXPECT().GetRequestByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:       "Request addressed to someone else rejected",
			receiverID: 3,
			requestID:  1,
			prepareMock: func() {
				friendRepo.EXPECT().GetRequestByID(gomock.Any(), 1).
					Return(&domain.FriendRequest{ID: 1, SenderID: 1, ReceiverID: 2}, nil)
			},
			expectedError: ErrNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			friendship, err := service.AcceptRequest(context.Background(), tt.receiverID, tt.requestID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, friendship)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, friendship)
			}
		})
	}
}

func TestDeclineRequest(t *testing.T) {
	service, friendRepo, _ := NewMock(t)

	friendRepo.EXPECT().GetRequestByID(gomock.Any(), 1).
		Return(&domain.FriendRequest{ID: 1, SenderID: 1, ReceiverID: 2}, nil)
	friendRepo.EXPECT().DeleteRequest(gomock.Any(), 1).Return(nil)

	err := service.DeclineRequest(context.Background(), 2, 1)
	assert.NoError(t, err)
}

func TestSearchUsers(t *testing.T) {
	service, _, userRepo := NewMock(t)

	tests := []struct {
		name        string
		query       string
		prepareMock func()
		expected    int
	}{
		{
			name:  "Query shorter than two chars returns nothing",
			query: "a",
			prepareMock: func() {
			},
			expected: 0,
		},
		{
			name:  "Matching users returned",
			query: "bo",
			prepareMock: func() {
				userRepo.EXPECT().Search(gomock.Any(), 1, "bo", 10).
					Return([]domain.User{{ID: 2, Handle: "bob"}}, nil)
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			users, err := service.SearchUsers(context.Background(), 1, tt.query)
			assert.NoError(t, err)
			assert.Len(t, users, tt.expected)
		})
	}
}

func TestListFriends(t *testing.T) {
	service, friendRepo, _ := NewMock(t)

	friendRepo.EXPECT().ListFriends(gomock.Any(), 1).
		Return([]domain.User{{ID: 2, Name: "Bob"}}, nil)

	friends, err := service.ListFriends(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, friends, 1)

	friendRepo.EXPECT().ListFriends(gomock.Any(), 1).Return(nil, errors.New("db error"))
	_, err = service.ListFriends(context.Background(), 1)
	assert.Error(t, err)
}
