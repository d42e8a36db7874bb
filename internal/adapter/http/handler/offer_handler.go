package handler

import (
	"strconv"

	"p2p-exchange/internal/adapter/http/dto"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/pkg/apperror"
	"p2p-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// OfferHandler handles offer book endpoints.
type OfferHandler struct {
	offerSvc ports.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerSvc ports.OfferService) *OfferHandler {
	return &OfferHandler{offerSvc: offerSvc}
}

// parsePagination reads page/page_size query parameters with defaults.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// ListOffers handles GET /api/v1/offers.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	page, pageSize := parsePagination(c)
	params := ports.OfferListParams{Page: page, PageSize: pageSize}

	if currency := c.Query("currency"); currency != "" {
		params.Currency = &currency
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			response.Error(c, apperror.Validation("max_price must be a decimal"))
			return
		}
		params.MaxPrice = &maxPrice
	}

	offers, total, err := h.offerSvc.ListOffers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.OfferResponse, len(offers))
	for i := range offers {
		items[i] = dto.FromOffer(&offers[i])
	}

	response.OK(c, dto.OfferListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: dto.TotalPages(total, pageSize),
	})
}

// GetOffer handles GET /api/v1/offers/:id.
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("offer"))
		return
	}

	offer, err := h.offerSvc.GetOffer(c.Request.Context(), offerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromOffer(offer))
}

// PublishOffer handles POST /api/v1/offers.
func (h *OfferHandler) PublishOffer(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req dto.PublishOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	price, err := dto.ParseAmount(req.Price)
	if err != nil {
		response.Error(c, apperror.ErrInvalidOfferTerms("price must be a decimal"))
		return
	}
	minAmount, err := dto.ParseAmount(req.MinAmount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidOfferTerms("min_amount must be a decimal"))
		return
	}
	maxAmount, err := dto.ParseAmount(req.MaxAmount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidOfferTerms("max_amount must be a decimal"))
		return
	}

	offer, err := h.offerSvc.PublishOffer(c.Request.Context(), ports.PublishOfferRequest{
		SellerID:  accountID,
		Price:     price,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Currency:  req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedWithNotice(c, dto.FromOffer(offer), "Listing published")
}
