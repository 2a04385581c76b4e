package v1

import (
	"github.com/analizador-gastos/backend/internal/models"
)

// Notification is created by budget evaluation, users can only read it and
// mark it as read.
type Notification struct {
	models.DefaultModel
	Type    models.NotificationType `json:"type" example:"warning"`                                                        // info or warning
	Message string                  `json:"message" example:"¡Alerta! Has superado el límite de 100000 en la categoría Comida"` // The message shown to the user
	Read    bool                    `json:"read" example:"false"`                                                          // Has the user seen this notification?
}

func newNotification(model models.Notification) Notification {
	return Notification{
		DefaultModel: model.DefaultModel,
		Type:         model.Type,
		Message:      model.Message,
		Read:         model.Read,
	}
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                                          // Data for the Notification
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type NotificationListResponse struct {
	Data  []Notification `json:"data"`                                                          // List of Notifications
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Unread string `form:"unread"` // Set to "true" to only return unread notifications
}
