package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	request "dealflow/internal/adapter/http/dto/request"
	response "dealflow/internal/adapter/http/dto/response"
	"dealflow/internal/usecase"
	"dealflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStepPayload = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid step payload", http.StatusBadRequest)

// TransactionHandler handles HTTP requests for the deal closing workflow:
// milestone listing/toggling, the close-out gate, and earnest deposits.

type TransactionHandler struct {
	usecase  usecase.ITransactionUseCase
	deposits usecase.IEarnestDepositUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase, deposits usecase.IEarnestDepositUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc, deposits: deposits}
}

// GetStepsByDeal returns the deal's milestones, bootstrapping the default
// catalog on first access.
func (h *TransactionHandler) GetStepsByDeal(c *gin.Context) {
	dealID := c.Param("deal_id")

	steps, err := h.usecase.GetStepsByDeal(c.Request.Context(), dealID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionSteps(steps))
}

// GetStep returns a single milestone.
func (h *TransactionHandler) GetStep(c *gin.Context) {
	stepID := c.Param("step_id")

	step, err := h.usecase.GetStep(c.Request.Context(), stepID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionStep(step))
}

// UpdateStepStatus toggles one milestone's status.
func (h *TransactionHandler) UpdateStepStatus(c *gin.Context) {
	stepID := c.Param("step_id")

	var payload request.UpdateStepStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	step, err := h.usecase.UpdateStepStatus(c.Request.Context(), stepID, payload.ResolveStatus())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionStep(step))
}

// CloseDeal runs the close-out gate and flips the deal to CLOSED when every
// precondition holds.
func (h *TransactionHandler) CloseDeal(c *gin.Context) {
	dealID := c.Param("deal_id")
	log.Printf("[transaction][handler] close start deal_id=%s", dealID)

	deal, err := h.usecase.CloseDeal(c.Request.Context(), dealID)
	if err != nil {
		log.Printf("[transaction][handler] close failed deal_id=%s err=%v", dealID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] close success deal_id=%s status=%s", dealID, deal.Status)

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// DepositEarnestMoney runs the earnest-money payment and completes the
// matching milestone. The body is forwarded to the payment gateway as-is.
func (h *TransactionHandler) DepositEarnestMoney(c *gin.Context) {
	dealID := c.Param("deal_id")
	log.Printf("[transaction][handler] earnest deposit start deal_id=%s", dealID)

	payload, err := readRawPayload(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	receipt, err := h.deposits.Deposit(c.Request.Context(), dealID, payload)
	if err != nil {
		log.Printf("[transaction][handler] earnest deposit failed deal_id=%s err=%v", dealID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] earnest deposit success deal_id=%s provider_payment_id=%s", dealID, receipt.ProviderPaymentID)

	c.JSON(http.StatusOK, response.FromEarnestDepositReceipt(receipt))
}

func readRawPayload(c *gin.Context) (json.RawMessage, error) {
	if c.Request == nil || c.Request.Body == nil {
		return json.RawMessage("{}"), nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	return body, nil
}

func mapTransactionError(err error) *pkg.AppError {
	var incomplete *usecase.IncompleteStepsError
	switch {
	case errors.As(err, &incomplete):
		return pkg.NewDomainErrorSimple("INCOMPLETE_STEPS", "All steps must be complete before closing", http.StatusConflict).
			WithDetails(incomplete.Labels)
	case errors.Is(err, usecase.ErrNoSignedContract):
		return pkg.NewDomainErrorSimple("UNSIGNED_CONTRACT", "A signed contract is required before closing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidStepID),
		errors.Is(err, usecase.ErrInvalidStepStatus), errors.Is(err, usecase.ErrInvalidDepositPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Transaction step not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEarnestStepMissing):
		return pkg.NewDomainErrorSimple("EARNEST_STEP_MISSING", "Deal has no earnest money milestone", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Earnest deposit declined by payment provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
