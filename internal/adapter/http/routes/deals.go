package routes

import (
	"dealflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeals     = "/deals"
	PathSteps     = "/steps"
	PathContracts = "/contracts"
)

func addDealRoutes(rg *gin.RouterGroup, dealHandler *handlers.DealHandler, transactionHandler *handlers.TransactionHandler, contractHandler *handlers.ContractHandler) {
	deals := rg.Group(PathDeals)
	{
		deals.POST("", dealHandler.CreateDeal)
		deals.GET("/:deal_id", dealHandler.GetDeal)

		// Closing workflow, keyed by deal.
		deals.GET("/:deal_id/steps", transactionHandler.GetStepsByDeal)
		deals.POST("/:deal_id/close", transactionHandler.CloseDeal)
		deals.POST("/:deal_id/earnest-deposit", transactionHandler.DepositEarnestMoney)
		deals.POST("/:deal_id/contracts", contractHandler.GenerateContract)
		deals.GET("/:deal_id/contracts", contractHandler.ListContractsByDeal)
	}

	steps := rg.Group(PathSteps)
	{
		steps.GET("/:step_id", transactionHandler.GetStep)
		steps.PATCH("/:step_id/status", transactionHandler.UpdateStepStatus)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("/:contract_id", contractHandler.GetContract)
		contracts.PATCH("/:contract_id/status", contractHandler.UpdateContractStatus)
	}
}
