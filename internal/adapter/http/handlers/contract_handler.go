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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for the contract generate/sign
// sub-workflow.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// GenerateContract creates (or idempotently returns) the deal's contract of
// the requested type. An empty body defaults to PURCHASE_AGREEMENT.
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	dealID := c.Param("deal_id")

	var payload request.GenerateContractRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
			return
		}
	}

	contract, err := h.usecase.Generate(c.Request.Context(), dealID, payload.ResolveType())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// UpdateContractStatus advances a contract through its sign workflow.
func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
	contractID := c.Param("contract_id")

	var payload request.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.UpdateStatus(c.Request.Context(), contractID, payload.ResolveStatus())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContract returns a single contract.
func (h *ContractHandler) GetContract(c *gin.Context) {
	contractID := c.Param("contract_id")

	contract, err := h.usecase.GetByID(c.Request.Context(), contractID)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ListContractsByDeal returns every contract on a deal.
func (h *ContractHandler) ListContractsByDeal(c *gin.Context) {
	dealID := c.Param("deal_id")

	contracts, err := h.usecase.ListByDeal(c.Request.Context(), dealID)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidContractType), errors.Is(err, usecase.ErrInvalidContractStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
