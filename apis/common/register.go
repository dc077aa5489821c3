package common

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/monitoring"
)

// GinGroupHandler is implemented by every API group: a base path, group
// middlewares and the route table.
type GinGroupHandler interface {
	BaseURL() string
	Middlewares() []gin.HandlerFunc
	Register(group *gin.RouterGroup)
}

func RegisterGinGroupHandler(router *gin.RouterGroup, handler GinGroupHandler) {
	group := router.Group(handler.BaseURL())
	group.Use(handler.Middlewares()...)
	handler.Register(group)
}

// PromMiddleware counts requests by route template and status.
func PromMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.APIRequests.WithLabelValues(
			ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
