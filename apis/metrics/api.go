package metrics

import (
	"github.com/codegangsta/inject"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Register(injector inject.Injector, router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
