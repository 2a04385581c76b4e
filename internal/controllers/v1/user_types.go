package v1

import (
	"github.com/analizador-gastos/backend/internal/models"
)

// UserEditable represents all user configurable settings
type UserEditable struct {
	Name        string `json:"name" example:"Ana García" default:""`        // Display name
	Currency    string `json:"currency" example:"$" default:"$"`            // Currency symbol used for display
	Language    string `json:"language" example:"es" default:"es"`          // UI language
	Theme       string `json:"theme" example:"light" default:"light"`       // UI theme
	EmailAlerts bool   `json:"emailAlerts" example:"true" default:"false"`  // Send budget alerts by email?
	AlertEmail  string `json:"alertEmail" example:"ana@example.com" default:""` // Address alerts are sent to. Defaults to the login email.
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:        editable.Name,
		Currency:    editable.Currency,
		Language:    editable.Language,
		Theme:       editable.Theme,
		EmailAlerts: editable.EmailAlerts,
		AlertEmail:  editable.AlertEmail,
	}
}

type User struct {
	models.DefaultModel
	UserEditable
	Email string `json:"email" example:"ana@example.com"` // Login email, read only
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		UserEditable: UserEditable{
			Name:        model.Name,
			Currency:    model.Currency,
			Language:    model.Language,
			Theme:       model.Theme,
			EmailAlerts: model.EmailAlerts,
			AlertEmail:  model.AlertEmail,
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                          // Data for the User
	Error *string `json:"error" example:"you need to log in to use this endpoint"` // The error, if any occurred
}
