package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/splittr/splittr/docs"
	"github.com/splittr/splittr/internal/handlers/auth"
	"github.com/splittr/splittr/internal/handlers/friends"
	"github.com/splittr/splittr/internal/handlers/ledger"
	"github.com/splittr/splittr/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   auth.NewMockService(ctrl),
		FriendService: friends.NewMockService(ctrl),
		LedgerService: ledger.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockFriendHandler := NewMockFriendHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().SearchUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().ListFriends(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().ListRequests(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().SendRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().AcceptRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().DeclineRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetPaidExpenses(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetOwedDebts(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalances(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		FriendHandler: mockFriendHandler,
		LedgerHandler: mockLedgerHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/users/search", http.StatusUnauthorized},
		{"GET", "/api/friends", http.StatusUnauthorized},
		{"GET", "/api/friends/requests", http.StatusUnauthorized},
		{"POST", "/api/friends/requests/2", http.StatusUnauthorized},
		{"POST", "/api/friends/requests/7/accept", http.StatusUnauthorized},
		{"POST", "/api/friends/requests/7/decline", http.StatusUnauthorized},
		{"POST", "/api/expenses", http.StatusUnauthorized},
		{"GET", "/api/expenses/paid", http.StatusUnauthorized},
		{"GET", "/api/expenses/owed", http.StatusUnauthorized},
		{"GET", "/api/balances", http.StatusUnauthorized},
		{"POST", "/api/settlements", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
