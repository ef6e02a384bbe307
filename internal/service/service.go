package service

import (
	"github.com/splittr/splittr/internal/handlers/auth"
	"github.com/splittr/splittr/internal/handlers/friends"
	"github.com/splittr/splittr/internal/handlers/ledger"

	pkgauth "github.com/splittr/splittr/pkg/auth"

	"github.com/splittr/splittr/internal/pg"
	"github.com/splittr/splittr/internal/repo"
	authservice "github.com/splittr/splittr/internal/service/authservice"
	friendservice "github.com/splittr/splittr/internal/service/friendservice"
	ledgerservice "github.com/splittr/splittr/internal/service/ledgerservice"
)

type Services struct {
	AuthService   auth.Service
	FriendService friends.Service
	LedgerService ledger.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	friendService := friendservice.New(repo.FriendRepo, repo.UserRepo)
	ledgerService := ledgerservice.New(repo.ExpenseRepo, repo.FriendRepo, txManager)

	return &Services{
		AuthService:   authService,
		FriendService: friendService,
		LedgerService: ledgerService,
	}
}
