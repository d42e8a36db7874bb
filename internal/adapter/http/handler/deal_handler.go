package handler

import (
	"p2p-exchange/internal/adapter/http/dto"
	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/pkg/apperror"
	"p2p-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DealHandler handles deal ledger endpoints.
type DealHandler struct {
	dealSvc ports.DealService
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealSvc ports.DealService) *DealHandler {
	return &DealHandler{dealSvc: dealSvc}
}

// ListDeals handles GET /api/v1/deals.
func (h *DealHandler) ListDeals(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	params := ports.DealListParams{
		AccountID: accountID,
		Page:      page,
		PageSize:  pageSize,
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.DealStatus(raw)
		params.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		side := domain.DealSide(raw)
		if side != domain.DealSideBuy && side != domain.DealSideSell {
			response.Error(c, apperror.Validation("type must be buy or sell"))
			return
		}
		params.Side = &side
	}
	params.ActiveOnly = c.Query("active") == "true"

	deals, total, err := h.dealSvc.ListDeals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DealResponse, len(deals))
	for i := range deals {
		items[i] = dto.FromDeal(&deals[i], accountID)
	}

	response.OK(c, dto.DealListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: dto.TotalPages(total, pageSize),
	})
}

// InitiateBuy handles POST /api/v1/offers/:id/buy.
func (h *DealHandler) InitiateBuy(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("offer"))
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	deal, err := h.dealSvc.InitiateBuy(c.Request.Context(), ports.InitiateBuyRequest{
		BuyerID: accountID,
		OfferID: offerID,
		Amount:  amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedWithNotice(c, dto.FromDeal(deal, accountID), "Deal initiated")
}

// transition runs one deal state change and renders the viewer's deal.
func (h *DealHandler) transition(
	c *gin.Context,
	notice string,
	op func(accountID, dealID uuid.UUID) (*domain.Deal, error),
) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("deal"))
		return
	}

	deal, err := op(accountID, dealID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithNotice(c, dto.FromDeal(deal, accountID), notice)
}

// ConfirmEscrow handles POST /api/v1/deals/:id/escrow.
func (h *DealHandler) ConfirmEscrow(c *gin.Context) {
	h.transition(c, "Funds locked in escrow", func(accountID, dealID uuid.UUID) (*domain.Deal, error) {
		return h.dealSvc.ConfirmEscrow(c.Request.Context(), accountID, dealID)
	})
}

// ConfirmComplete handles POST /api/v1/deals/:id/complete.
func (h *DealHandler) ConfirmComplete(c *gin.Context) {
	h.transition(c, "Deal completed", func(accountID, dealID uuid.UUID) (*domain.Deal, error) {
		return h.dealSvc.ConfirmComplete(c.Request.Context(), accountID, dealID)
	})
}

// OpenDispute handles POST /api/v1/deals/:id/dispute.
func (h *DealHandler) OpenDispute(c *gin.Context) {
	h.transition(c, "Dispute opened", func(accountID, dealID uuid.UUID) (*domain.Deal, error) {
		return h.dealSvc.OpenDispute(c.Request.Context(), accountID, dealID)
	})
}

// CancelDeal handles POST /api/v1/deals/:id/cancel.
func (h *DealHandler) CancelDeal(c *gin.Context) {
	h.transition(c, "Deal cancelled", func(accountID, dealID uuid.UUID) (*domain.Deal, error) {
		return h.dealSvc.CancelDeal(c.Request.Context(), accountID, dealID)
	})
}
