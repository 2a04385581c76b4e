// Package notifier delivers budget alerts: it records an in-app
// notification and, best effort, dispatches an email and publishes an event
// to the message bus.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/analizador-gastos/backend/internal/evaluator"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Notifier implements evaluator.Notifier.
//
// Recording the notification and sending the email are independent: a dead
// email provider must never prevent the in-app notification from showing up.
type Notifier struct {
	email  *EmailClient    // nil disables email dispatch
	events *EventPublisher // nil disables bus events
}

func New(email *EmailClient, events *EventPublisher) *Notifier {
	return &Notifier{
		email:  email,
		events: events,
	}
}

// Notify persists a notification for the alert and dispatches it to the
// optional transports.
//
// The returned error covers only the notification record. Transport
// failures are logged, alert delivery is best effort.
func (n *Notifier) Notify(alert evaluator.Alert) error {
	var category models.Category
	err := models.DB.First(&category, alert.CategoryID).Error
	if err != nil {
		return fmt.Errorf("loading category for alert: %w", err)
	}

	var user models.User
	err = models.DB.First(&user, alert.UserID).Error
	if err != nil {
		return fmt.Errorf("loading user for alert: %w", err)
	}

	notification := models.Notification{
		UserID:  alert.UserID,
		Type:    models.NotificationTypeInfo,
		Message: fmt.Sprintf("Estás cerca de alcanzar el límite de %s en la categoría %s (%s%%)", alert.Limit, category.Name, alert.Percentage.Round(0)),
	}

	if alert.Level == evaluator.LevelOver {
		notification.Type = models.NotificationTypeWarning
		notification.Message = fmt.Sprintf("¡Alerta! Has superado el límite de %s en la categoría %s", alert.Limit, category.Name)
	}

	err = models.DB.Create(&notification).Error
	if err != nil {
		return fmt.Errorf("recording notification: %w", err)
	}

	if n.email != nil && user.EmailAlerts && user.AlertEmail != "" {
		err = n.email.Send(user.AlertEmail, "Alerta de Gastos", notification.Message)
		if err != nil {
			log.Warn().Err(err).Str("user", user.ID.String()).Msg("alert email failed")
		}
	}

	if n.events != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = n.events.PublishAlert(ctx, alert)
		if err != nil {
			log.Warn().Err(err).Str("user", user.ID.String()).Msg("alert event publish failed")
		}
	}

	return nil
}
