package repo

import (
	"github.com/splittr/splittr/internal/pg"
	expenserepo "github.com/splittr/splittr/internal/repo/expense-repo"
	friendrepo "github.com/splittr/splittr/internal/repo/friend-repo"
	userrepo "github.com/splittr/splittr/internal/repo/user-repo"
	"github.com/splittr/splittr/internal/service/authservice"
	"github.com/splittr/splittr/internal/service/friendservice"
	"github.com/splittr/splittr/internal/service/ledgerservice"
)

// UserRepo joins the views the auth and friend services need of the users
// table.
type UserRepo interface {
	authservice.Repo
	friendservice.UserRepo
}

type Repositories struct {
	UserRepo    UserRepo
	FriendRepo  friendservice.FriendRepo
	ExpenseRepo ledgerservice.LedgerRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	friendRepo := friendrepo.New(conn, txManager)
	expenseRepo := expenserepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		FriendRepo:  friendRepo,
		ExpenseRepo: expenseRepo,
	}
}
