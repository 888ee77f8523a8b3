package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// AutopayHandler handles recurring transaction definitions.
type AutopayHandler struct {
	autopayService services.AutopayServicer
}

// NewAutopayHandler creates a new AutopayHandler.
func NewAutopayHandler(autopayService services.AutopayServicer) *AutopayHandler {
	return &AutopayHandler{autopayService: autopayService}
}

// CreateAutopayRequest represents the request payload for scheduling a recurring transaction.
type CreateAutopayRequest struct {
	Description string                 `json:"description" binding:"max=255"`
	Amount      decimal.Decimal        `json:"amount" binding:"required,money" swaggertype:"string" example:"49.99"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	CategoryID  string                 `json:"category_id"`
	PaymentMode models.PaymentMode     `json:"payment_mode" binding:"omitempty,payment_mode"`
	Frequency   models.Frequency       `json:"frequency" binding:"required,frequency"`
	StartDate   *string                `json:"start_date"`
	EndDate     *string                `json:"end_date"`
	MaxCount    *int                   `json:"max_count" binding:"omitempty,min=1"`
}

// CreateAutopay handles scheduling a recurring transaction.
// @Summary     Create an autopay
// @Description Schedule a recurring income or expense
// @Tags        autopays
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAutopayRequest true "Autopay details"
// @Success     201 {object} models.AutopayDefinition "Autopay created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /autopays [post]
func (h *AutopayHandler) CreateAutopay(c *gin.Context) {
	var req CreateAutopayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	start, err := parseOptionalTime(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalTime(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	draft := services.AutopayDraft{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		PaymentMode: req.PaymentMode,
		Frequency:   req.Frequency,
		EndDate:     end,
		MaxCount:    req.MaxCount,
	}
	if start != nil {
		draft.StartDate = *start
	}

	def, err := h.autopayService.SaveAutopayTransaction(c.Request.Context(), draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"autopay": def})
}

// GetAutopays handles listing autopay definitions.
// @Summary     List autopays
// @Description List every autopay definition, active or not
// @Tags        autopays
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.AutopayDefinition "Autopays"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /autopays [get]
func (h *AutopayHandler) GetAutopays(c *gin.Context) {
	defs, err := h.autopayService.GetAutopayTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"autopays": defs})
}

// GetAutopay handles retrieving one autopay definition.
// @Summary     Get autopay by ID
// @Tags        autopays
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Autopay ID"
// @Success     200 {object} models.AutopayDefinition "Autopay details"
// @Failure     400 {object} ErrorResponse "Invalid autopay ID"
// @Failure     404 {object} ErrorResponse "Autopay not found"
// @Router      /autopays/{id} [get]
func (h *AutopayHandler) GetAutopay(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	def, err := h.autopayService.GetAutopayByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"autopay": def})
}

// DisableAutopay handles stopping a recurring transaction.
// @Summary     Disable autopay
// @Description Stop future executions; past transactions are kept
// @Tags        autopays
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Autopay ID"
// @Success     200 {object} models.AutopayDefinition "Disabled autopay"
// @Failure     400 {object} ErrorResponse "Invalid autopay ID"
// @Failure     404 {object} ErrorResponse "Autopay not found"
// @Router      /autopays/{id}/disable [post]
func (h *AutopayHandler) DisableAutopay(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	def, err := h.autopayService.DisableAutopay(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"autopay": def})
}
