package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/services"
)

// AccountHandler serves the balance.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetBalance returns the current balance
// @Summary     Get balance
// @Description Current balance with income and expense counters
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AccountState "Account state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	state, err := h.accountService.GetAccountState(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": state})
}
