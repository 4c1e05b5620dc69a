package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
	"github.com/mohammedmokhtar77/Bank-System/internal/service"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(service.CreateAccountParams) (*service.AccountView, error)
	Deposit(accountID string, amount float64) (*service.AccountView, error)
	Withdraw(accountID string, amount float64) (*service.AccountView, error)
	AddInterest(accountID string) (float64, *service.AccountView, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(accountID string) (*service.AccountView, error)
	ListAccounts() []service.AccountView
	FindByName(name string) (*service.AccountView, error)
	FindByEmail(email string) (*service.AccountView, error)
	Stats() service.StatsView
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

type CreateAccountRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required"`
	Password       string   `json:"password" validate:"required"`
	InitialBalance float64  `json:"initialBalance" validate:"required,gt=0"`
	AccountType    string   `json:"accountType" validate:"required,oneof=standard savings checking"`
	InterestRate   *float64 `json:"interestRate" validate:"omitempty,gt=0,lte=1"`
	TransactionFee *float64 `json:"transactionFee" validate:"omitempty,gte=0"`
}

type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type InterestResponse struct {
	Interest float64             `json:"interest"`
	Account  service.AccountView `json:"account"`
}

type ListAccountsResponse struct {
	Accounts []service.AccountView `json:"accounts"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.CreateAccount(service.CreateAccountParams{
		Name:           req.Name,
		Email:          req.Email,
		Credential:     req.Password,
		AccountType:    req.AccountType,
		InitialBalance: req.InitialBalance,
		InterestRate:   req.InterestRate,
		TransactionFee: req.TransactionFee,
	})
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, ListAccountsResponse{Accounts: h.queries.ListAccounts()})
}

func (h *AccountHandler) SearchAccounts(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		view, err := h.queries.FindByName(name)
		if err != nil {
			respondWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}
	if email := c.Query("email"); email != "" {
		view, err := h.queries.FindByEmail(email)
		if err != nil {
			respondWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}
	middleware.RespondWithError(c, http.StatusBadRequest, "Provide a name or email query parameter")
}

func (h *AccountHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.Stats())
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	if !requireOwner(c, accountID) {
		return
	}

	view, err := h.queries.GetAccount(accountID)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	accountID := c.Param("accountId")
	if !requireOwner(c, accountID) {
		return
	}

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.Deposit(accountID, req.Amount)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	accountID := c.Param("accountId")
	if !requireOwner(c, accountID) {
		return
	}

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.Withdraw(accountID, req.Amount)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AccountHandler) AddInterest(c *gin.Context) {
	accountID := c.Param("accountId")
	if !requireOwner(c, accountID) {
		return
	}

	interest, view, err := h.commands.AddInterest(accountID)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, InterestResponse{Interest: interest, Account: *view})
}

// requireOwner ensures the authenticated account matches the addressed
// one. Accounts can only be operated on by their holder.
func requireOwner(c *gin.Context, accountID string) bool {
	authID, ok := middleware.GetAccountID(c)
	if !ok || authID != accountID {
		middleware.RespondWithError(c, http.StatusForbidden, "You can only operate on your own account")
		return false
	}
	return true
}

// respondWithDomainError maps domain errors to distinct status codes so
// callers can tell failure kinds apart.
func respondWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, bank.ErrDuplicateEmail):
		middleware.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, bank.ErrAuthenticationFailed):
		middleware.RespondWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, bank.ErrInsufficientFunds):
		middleware.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNotSavings):
		middleware.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, bank.ErrInvalidName),
		errors.Is(err, bank.ErrInvalidBalance),
		errors.Is(err, bank.ErrInvalidRate),
		errors.Is(err, bank.ErrInvalidFee),
		errors.Is(err, bank.ErrInvalidAccountType),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrSameAccount):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
