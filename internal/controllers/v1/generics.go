package v1

import (
	"github.com/analizador-gastos/backend/internal/httputil"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getUserResource reads the ":id" URI parameter and loads the resource it
// references, scoped to the authenticated user.
//
// Resources of other users are indistinguishable from missing ones, both
// return models.ErrResourceNotFound.
func getUserResource[T models.Category | models.Expense | models.Budget | models.Notification](c *gin.Context) (resource T, err error) {
	var uri URIID
	if err = c.ShouldBindUri(&uri); err != nil {
		return resource, httputil.ErrInvalidUUID
	}

	err = models.DB.First(&resource, "id = ? AND user_id = ?", uri.ID, currentUserID(c)).Error
	if err != nil {
		return resource, err
	}

	return resource, nil
}
