package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mymoney/internal/errors"
	"mymoney/internal/middleware"
	"mymoney/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating the account.
// Balance is a pointer so an explicit zero passes the required check.
type CreateAccountRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Balance *int64 `json:"balance" binding:"required"`
}

// UpdateAccountRequest represents the request payload for renaming the account.
type UpdateAccountRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// GetAccount returns the user's account
// @Summary     Get account
// @Description Get the authenticated user's account
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No account"
// @Router      /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccount(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateAccount creates the user's single account
// @Summary     Create account
// @Description Create the authenticated user's account (one per user)
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input or account already exists"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /account [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(userID, req.Name, *req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		c.GetString(middleware.RequestIDKey),
		map[string]interface{}{"name": req.Name, "balance": *req.Balance})

	c.JSON(http.StatusCreated, account)
}

// UpdateAccount renames the user's account
// @Summary     Update account
// @Description Rename the authenticated user's account
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateAccountRequest true "New account name"
// @Success     200 {object} map[string]string "Confirmation message"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No account"
// @Router      /account [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.accountService.RenameAccount(userID, req.Name); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account updated successfully"})
}
