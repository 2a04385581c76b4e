package v1

import (
	"net/http"

	"github.com/analizador-gastos/backend/internal/httputil"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", GetNotifications)
	}

	// Mark all notifications as read
	{
		r.OPTIONS("/read-all", OptionsNotificationReadAll)
		r.POST("/read-all", ReadAllNotifications)
	}

	// Mark a single notification as read
	{
		r.OPTIONS("/:id/read", OptionsNotificationRead)
		r.PATCH("/:id/read", ReadNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/read-all [options]
func OptionsNotificationReadAll(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the notification"
// @Router			/v1/notifications/{id}/read [options]
func OptionsNotificationRead(c *gin.Context) {
	_, err := getUserResource[models.Notification](c)
	if err != nil {
		c.JSON(status(err), e(err))
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Get notifications
// @Description	Returns the user's notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Failure		500	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			unread	query	bool	false	"Only return unread notifications"
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	query := models.DB.Where(&models.Notification{UserID: currentUserID(c)})

	if filter.Unread == "true" {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{Error: &s})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotification(notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: data})
}

// @Summary		Mark notification as read
// @Description	Marks a specific notification as read
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ID of the notification"
// @Router			/v1/notifications/{id}/read [patch]
func ReadNotification(c *gin.Context) {
	notification, err := getUserResource[models.Notification](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	err = models.DB.Model(&notification).Update("read", true).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	data := newNotification(notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &data})
}

// @Summary		Mark all notifications as read
// @Description	Marks every unread notification of the user as read
// @Tags			Notifications
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/notifications/read-all [post]
func ReadAllNotifications(c *gin.Context) {
	err := models.MarkAllNotificationsRead(models.DB, currentUserID(c))
	if err != nil {
		c.JSON(status(err), e(err))
		return
	}

	c.Status(http.StatusNoContent)
}
