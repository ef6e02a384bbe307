package service

import (
	"testing"

	"github.com/splittr/splittr/internal/pg"
	"github.com/splittr/splittr/internal/repo"
	"github.com/splittr/splittr/internal/service/authservice"
	"github.com/splittr/splittr/internal/service/friendservice"
	"github.com/splittr/splittr/internal/service/ledgerservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// mockUserRepo joins the two user-repo views repo.UserRepo requires.
type mockUserRepo struct {
	*authservice.MockRepo
	*friendservice.MockUserRepo
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFriendRepo := friendservice.NewMockFriendRepo(ctrl)
	mockExpenseRepo := ledgerservice.NewMockLedgerRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		UserRepo: mockUserRepo{
			MockRepo:     authservice.NewMockRepo(ctrl),
			MockUserRepo: friendservice.NewMockUserRepo(ctrl),
		},
		FriendRepo:  mockFriendRepo,
		ExpenseRepo: mockExpenseRepo,
	}

	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.FriendService)
	assert.NotNil(t, services.LedgerService)
}
