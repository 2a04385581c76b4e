package v1

import (
	"time"

	"github.com/analizador-gastos/backend/internal/models"
	ag_uuid "github.com/analizador-gastos/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"14500.50" minimum:"0.00000001" multipleOf:"0.00000001"` // The amount spent
	Date       time.Time       `json:"date" example:"2024-03-15T00:00:00Z"`                                    // Date of the expense
	Note       string          `json:"note" example:"Supermercado" default:""`                                 // A note
	CategoryID ag_uuid.UUID    `json:"categoryId" example:"d5dbc063-b447-4fda-a906-f107a50e454e"`              // ID of the category

	// Category is the deprecated way of referencing the category by its
	// name instead of its ID. It is resolved against the user's categories
	// when CategoryID is not set.
	Category string `json:"category,omitempty" example:"Comida"`
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:     userID,
		CategoryID: editable.CategoryID.UUID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,
	}
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
}

func newExpense(model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:     model.Amount,
			Date:       model.Date,
			Note:       model.Note,
			CategoryID: ag_uuid.UUID{UUID: model.CategoryID},
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseQueryFilter struct {
	CategoryID ag_uuid.UUID `form:"category"`                                                // By category ID
	From       time.Time    `form:"from" filterField:"false" time_format:"2006-01-02"`       // Expenses on or after this date
	To         time.Time    `form:"to" filterField:"false" time_format:"2006-01-02"`         // Expenses on or before this date
	Offset     uint         `form:"offset" filterField:"false"`                              // The offset of the first Expense returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`                               // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		CategoryID: f.CategoryID.UUID,
	}
}
