package v1

import (
	"github.com/analizador-gastos/backend/internal/evaluator"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/analizador-gastos/backend/internal/types"
	ag_uuid "github.com/analizador-gastos/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID     ag_uuid.UUID    `json:"categoryId" example:"d5dbc063-b447-4fda-a906-f107a50e454e"`              // ID of the category the limit applies to
	Amount         decimal.Decimal `json:"amount" example:"100000" minimum:"0.00000001" multipleOf:"0.00000001"`   // The spending limit for one period
	Period         types.Period    `json:"period" example:"monthly" default:"monthly"`                             // daily, weekly, monthly or yearly
	AlertThreshold uint            `json:"alertThreshold" example:"80" default:"80" minimum:"1" maximum:"100"`     // Percentage of the limit at which a near-limit alert fires
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:         userID,
		CategoryID:     editable.CategoryID.UUID,
		Amount:         editable.Amount,
		Period:         editable.Period,
		AlertThreshold: editable.AlertThreshold,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID:     ag_uuid.UUID{UUID: model.CategoryID},
			Amount:         model.Amount,
			Period:         model.Period,
			AlertThreshold: model.AlertThreshold,
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of Budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetStatusListResponse struct {
	Data  []evaluator.BudgetStatus `json:"data"`                                          // Current status of every evaluable budget
	Error *string                  `json:"error" example:"there is a problem with the database connection"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	CategoryID ag_uuid.UUID `form:"category"` // By category ID
	Period     string       `form:"period"`   // By period (daily, weekly, monthly or yearly)
}
