package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterWebsocketRoutes registers the websocket route with
// the RouterGroup that is passed.
func RegisterWebsocketRoutes(r *gin.RouterGroup) {
	r.GET("", GetWebsocket)
}

// @Summary		Websocket
// @Description	Upgrades the connection to a websocket. The server pushes budget statuses after every re-evaluation.
// @Tags			Websocket
// @Success		101
// @Failure		400	{object}	httpError
// @Router			/v1/ws [get]
func GetWebsocket(c *gin.Context) {
	err := hub.Handle(c, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, e(err))
		return
	}
}
