package handlers

import (
	"errors"
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"
	"dealflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDealPayload = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)

// DealHandler exposes the minimal deal surface the closing workflow needs.

type DealHandler struct {
	usecase usecase.IDealUseCase
}

func NewDealHandler(uc usecase.IDealUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

func (h *DealHandler) CreateDeal(c *gin.Context) {
	var payload request.CreateDealRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
			return
		}
	}

	deal, err := h.usecase.Create(c.Request.Context(), payload.Address, payload.ResolveStatus())
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeal(deal))
}

func (h *DealHandler) GetDeal(c *gin.Context) {
	dealID := c.Param("deal_id")

	deal, err := h.usecase.GetByID(c.Request.Context(), dealID)
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidDealStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
