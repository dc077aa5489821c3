package apis

import (
	"fmt"

	"github.com/codegangsta/inject"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/authapi"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/common"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/dashboard"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/metrics"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
)

func newEngine(injector inject.Injector) (*gin.Engine, error) {
	engine := gin.Default()
	h := cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTION", "HEAD"},
		AllowCredentials: true,
	})
	engine.Use(h)
	engine.Use(common.PromMiddleware())
	injector.Map(engine)

	initFuncs := []interface{}{
		dashboard.Register,
		authapi.Register,
		metrics.Register,
	}

	for _, f := range initFuncs {
		_, err := injector.Invoke(f)
		if err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func Run(injector inject.Injector, cfg configs.Config) error {
	engine, err := newEngine(injector)
	if err != nil {
		return err
	}
	if cfg.GetEnablePprof() {
		pprof.Register(engine)
	}

	port := cfg.GetAPIServicePort()
	return engine.Run(fmt.Sprintf(":%d", port))
}
