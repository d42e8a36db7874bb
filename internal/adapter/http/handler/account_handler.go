package handler

import (
	"fmt"

	"p2p-exchange/internal/adapter/http/dto"
	"p2p-exchange/internal/adapter/http/middleware"
	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/pkg/apperror"
	"p2p-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// currentAccountID extracts the authenticated account from the request
// context set by the JWT middleware.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxAccountID)
	if !exists {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// GetAccount handles GET /api/v1/account.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromAccount(account))
}

// SwitchRole handles PUT /api/v1/account/role.
func (h *AccountHandler) SwitchRole(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req dto.SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.SwitchRole(c.Request.Context(), accountID, domain.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	notice := "Buyer mode activated"
	if account.Role == domain.RoleSeller {
		notice = "Seller mode activated"
	}
	response.OKWithNotice(c, dto.FromAccount(account), notice)
}

// Deposit handles POST /api/v1/account/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	account, err := h.accountSvc.Deposit(c.Request.Context(), accountID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithNotice(c, dto.FromAccount(account), fmt.Sprintf("Deposited %s", amount))
}

// Withdraw handles POST /api/v1/account/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	account, err := h.accountSvc.Withdraw(c.Request.Context(), accountID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithNotice(c, dto.FromAccount(account), fmt.Sprintf("Withdrew %s", amount))
}
