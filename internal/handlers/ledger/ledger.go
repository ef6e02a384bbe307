package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/internal/dto"
	ledgerservice "github.com/splittr/splittr/internal/service/ledgerservice"
	"github.com/splittr/splittr/pkg/auth"
	"github.com/splittr/splittr/pkg/utils"
)

type Service interface {
	CreateExpense(ctx context.Context, payerID int, description string, total decimal.Decimal, participantIDs []int, splitMode string, customAmounts map[int]decimal.Decimal) (*domain.Expense, error)
	FriendBalances(ctx context.Context, userID int) ([]domain.FriendBalance, error)
	RecordPayment(ctx context.Context, recorderID, friendID int, amount decimal.Decimal) ([]domain.Debt, error)
	ListPaidExpenses(ctx context.Context, userID int) ([]domain.Expense, error)
	ListOwedDebts(ctx context.Context, userID int) ([]domain.OwedDebt, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// CreateExpense godoc
//
//	@Summary		Create a shared expense
//	@Description	Record an expense paid by the authenticated user and split it among friends, evenly or with custom per-person amounts.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateExpenseRequestDTO	true	"Expense payload"
//	@Success		200		{object}	dto.ExpenseResponseDTO		"Created expense with its debts"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Custom amounts exceed the total"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/expenses [post]
func (h *LedgerHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customAmounts := make(map[int]decimal.Decimal, len(req.CustomAmounts))
	for _, ca := range req.CustomAmounts {
		customAmounts[ca.UserID] = ca.Amount
	}

	expense, err := h.ledgerService.CreateExpense(r.Context(), userID, req.Description, req.TotalAmount, req.ParticipantIDs, req.SplitMode, customAmounts)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrSplitExceedsTotal):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, expenseToDTO(expense))
}

// GetPaidExpenses godoc
//
//	@Summary		List expenses paid by the user
//	@Description	List expenses the authenticated user paid for, newest first, with the debt breakdown of each.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ExpenseResponseDTO	"Paid expenses"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/expenses/paid [get]
func (h *LedgerHandler) GetPaidExpenses(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	expenses, err := h.ledgerService.ListPaidExpenses(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ExpenseResponseDTO, len(expenses))
	for i := range expenses {
		response[i] = *expenseToDTO(&expenses[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOwedDebts godoc
//
//	@Summary		List debts the user owes
//	@Description	List debts the authenticated user owes to friends, newest expense first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OwedDebtResponseDTO	"Owed debts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/expenses/owed [get]
func (h *LedgerHandler) GetOwedDebts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	debts, err := h.ledgerService.ListOwedDebts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OwedDebtResponseDTO, len(debts))
	for i, d := range debts {
		response[i] = dto.OwedDebtResponseDTO{
			ID:          d.ID,
			ExpenseID:   d.ExpenseID,
			Description: d.Description,
			PayerID:     d.PayerID,
			PayerName:   d.PayerName,
			Amount:      d.Amount,
			PaidAmount:  d.PaidAmount,
			IsFullyPaid: d.IsFullyPaid,
			CreatedAt:   d.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBalances godoc
//
//	@Summary		Get net balances per friend
//	@Description	Compute the signed net balance against every friend: positive means the friend owes the user.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FriendBalanceDTO	"Net balance per friend"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balances [get]
func (h *LedgerHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balances, err := h.ledgerService.FriendBalances(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FriendBalanceDTO, len(balances))
	for i, b := range balances {
		response[i] = dto.FriendBalanceDTO{
			FriendID: b.FriendID,
			Name:     b.Name,
			Handle:   b.Handle,
			Amount:   b.Amount.Round(2),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RecordPayment godoc
//
//	@Summary		Record a settlement payment
//	@Description	Record a payment from a friend towards what they owe the authenticated user. The amount is applied to the friend's debts oldest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPaymentRequestDTO		true	"Payment payload"
//	@Success		200		{object}	dto.RecordPaymentResponseDTO	"Updated debts"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Payment exceeds the outstanding balance"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/settlements [post]
func (h *LedgerHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.ledgerService.RecordPayment(r.Context(), userID, req.FriendID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrPaymentExceedsBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	debts := make([]dto.DebtDTO, len(updated))
	for i, d := range updated {
		debts[i] = debtToDTO(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordPaymentResponseDTO{
		Message:      "Payment recorded",
		UpdatedDebts: debts,
	})
}

func expenseToDTO(e *domain.Expense) *dto.ExpenseResponseDTO {
	debts := make([]dto.DebtDTO, len(e.Debts))
	for i, d := range e.Debts {
		debts[i] = debtToDTO(d)
	}
	return &dto.ExpenseResponseDTO{
		ID:          e.ID,
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		PayerID:     e.PayerID,
		CreatedAt:   e.CreatedAt,
		Debts:       debts,
	}
}

func debtToDTO(d domain.Debt) dto.DebtDTO {
	return dto.DebtDTO{
		ID:          d.ID,
		ExpenseID:   d.ExpenseID,
		DebtorID:    d.DebtorID,
		Amount:      d.Amount.Round(2),
		PaidAmount:  d.PaidAmount.Round(2),
		IsFullyPaid: d.IsFullyPaid,
	}
}
