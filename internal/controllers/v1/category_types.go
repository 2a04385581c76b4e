package v1

import (
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string              `json:"name" example:"Comida" default:""`         // Name of the category
	Type  models.CategoryType `json:"type" example:"expense" default:"expense"` // expense or income
	Color string              `json:"color" example:"#fd7f6f" default:""`       // Display color
	Icon  string              `json:"icon" example:"restaurant" default:""`     // Display icon
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Type:   editable.Type,
		Color:  editable.Color,
		Icon:   editable.Icon,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Type:  model.Type,
			Color: model.Color,
			Icon:  model.Icon,
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Type   string `form:"type"`   // By type (expense or income)
	Search string `form:"search"` // Search for this text in the name
}
