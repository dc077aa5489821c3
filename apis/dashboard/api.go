package dashboard

import (
	"errors"
	"net/http"
	"strings"

	"github.com/codegangsta/inject"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/common"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/console"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/db"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/store"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/utils"
)

const sessionKey = "session"

type DashboardAPI struct {
	Console console.Console `inject:"console"`
	Auth    auth.Client     `inject:"auth"`
	logger  zerolog.Logger
}

func Register(injector inject.Injector, router *gin.Engine) {
	logger := log.Logger("dashboard_api")
	api := &DashboardAPI{logger: logger}
	if err := injector.Apply(api); err != nil {
		logger.Fatal().Err(err).Msg("Failed to init dashboard api.")
	}
	common.RegisterGinGroupHandler(&router.RouterGroup, api)
}

func (a *DashboardAPI) BaseURL() string {
	return "api/v1"
}

func (a *DashboardAPI) Middlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{a.sessionMiddleware}
}

func (a *DashboardAPI) Register(group *gin.RouterGroup) {
	group.GET("/dashboard", a.GetDashboard)
	group.POST("/detections", a.AddDetection)
	group.POST("/detections/:id/acknowledge", a.Acknowledge)
	group.POST("/detections/acknowledge_all", a.AcknowledgeAll)
	group.POST("/detections/dismiss", a.Dismiss)
	group.GET("/perimeters", a.GetPerimeters)
	group.POST("/perimeters/refresh", a.RefreshPerimeters)
	group.PATCH("/perimeters/:zone", a.UpdateZoneStatus)
	group.GET("/camera/status", a.CameraStatus)
	group.POST("/camera/start", a.StartCamera)
	group.POST("/camera/stop", a.StopCamera)
	group.POST("/camera/focus", a.AcquireFocus)
	group.DELETE("/camera/focus", a.ReleaseFocus)
	group.GET("/profile", a.GetProfile)
	group.PATCH("/profiles/:id/role", a.UpdateRole)
	group.GET("/settings", a.GetSettings)
	group.PUT("/settings", a.SaveSettings)
}

// sessionMiddleware resolves the bearer token to a session when one is
// presented. Routes decide for themselves whether a session is required.
func (a *DashboardAPI) sessionMiddleware(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		token := strings.TrimPrefix(header, "Bearer ")
		if sess, err := a.Auth.SessionFromToken(token); err == nil {
			ctx.Set(sessionKey, sess)
		}
	}
	ctx.Next()
}

func (a *DashboardAPI) session(ctx *gin.Context) *auth.Session {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*auth.Session)
	return sess
}

func (a *DashboardAPI) GetDashboard(ctx *gin.Context) {
	zones, loading, perimErr := a.Console.Perimeters()
	devStatus, devErr := a.Console.DeviceStatus()
	current := a.Console.CurrentDetections()

	snapshot := Snapshot{
		SystemTime: a.Console.Clock(),
		Alert:      len(current) > 0,
		Current:    current,
		Recent:     a.Console.RecentDetections(),
		Newest:     a.Console.Surfaced(),
		Alarm:      a.Console.AlarmActive(),
		Perimeters: PerimeterView{Zones: zones, Loading: loading, Error: perimErr},
		Device:     DeviceView{Running: devStatus.Running, Known: devStatus.Known, Error: devErr},
		Settings:   a.Console.Settings(ctx.Request.Context()),
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(snapshot))
}

func (a *DashboardAPI) AddDetection(ctx *gin.Context) {
	if a.session(ctx) == nil {
		ctx.JSON(http.StatusUnauthorized, utils.ResponseErr(2002, "sign in required"))
		return
	}
	var req AddDetectionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		a.logger.Error().Msgf("AddDetection request error: %s", err)
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	det, err := a.Console.AddDetection(ctx.Request.Context(), a.session(ctx), req.Location, req.ActionTaken)
	if err != nil {
		a.lifecycleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, utils.ResponseOK(det))
}

func (a *DashboardAPI) UpdateRole(ctx *gin.Context) {
	var req UpdateRoleReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		a.logger.Error().Msgf("UpdateRole request error: %s", err)
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	id := ctx.Param("id")
	if err := a.Console.SetUserRole(ctx.Request.Context(), a.session(ctx), id, req.Role); err != nil {
		a.lifecycleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{"id": id, "role": req.Role}))
}

func (a *DashboardAPI) Acknowledge(ctx *gin.Context) {
	id := ctx.Param("id")
	err := a.Console.AcknowledgeDetection(ctx.Request.Context(), a.session(ctx), id)
	if err != nil {
		a.lifecycleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{"id": id}))
}

func (a *DashboardAPI) AcknowledgeAll(ctx *gin.Context) {
	err := a.Console.AcknowledgeAll(ctx.Request.Context(), a.session(ctx))
	if err != nil {
		a.lifecycleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{}))
}

func (a *DashboardAPI) Dismiss(ctx *gin.Context) {
	a.Console.DismissSurfaced()
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{}))
}

func (a *DashboardAPI) GetPerimeters(ctx *gin.Context) {
	zones, loading, perimErr := a.Console.Perimeters()
	ctx.JSON(http.StatusOK, utils.ResponseOK(PerimeterView{
		Zones: zones, Loading: loading, Error: perimErr,
	}))
}

func (a *DashboardAPI) RefreshPerimeters(ctx *gin.Context) {
	a.Console.RefreshPerimeters()
	zones, loading, perimErr := a.Console.Perimeters()
	ctx.JSON(http.StatusOK, utils.ResponseOK(PerimeterView{
		Zones: zones, Loading: loading, Error: perimErr,
	}))
}

func (a *DashboardAPI) UpdateZoneStatus(ctx *gin.Context) {
	zone := ctx.Param("zone")
	var req ZoneStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Status == nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	if err := a.Console.SetZoneStatus(ctx.Request.Context(), zone, *req.Status); err != nil {
		a.storeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{"zone": zone, "status": *req.Status}))
}

func (a *DashboardAPI) CameraStatus(ctx *gin.Context) {
	status, devErr := a.Console.DeviceStatus()
	ctx.JSON(http.StatusOK, utils.ResponseOK(DeviceView{
		Running: status.Running, Known: status.Known, Error: devErr,
	}))
}

func (a *DashboardAPI) StartCamera(ctx *gin.Context) {
	result, err := a.Console.StartDevice(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, utils.ResponseErr(2102, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{"status": result}))
}

func (a *DashboardAPI) StopCamera(ctx *gin.Context) {
	result, err := a.Console.StopDevice(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, utils.ResponseErr(2102, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{"status": result}))
}

// AcquireFocus is the explicit "open camera" signal: the live view takes
// the foreground and alerts defer until release.
func (a *DashboardAPI) AcquireFocus(ctx *gin.Context) {
	a.Console.RedirectToCamera()
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{}))
}

func (a *DashboardAPI) ReleaseFocus(ctx *gin.Context) {
	a.Console.ReleaseFocus()
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{}))
}

func (a *DashboardAPI) GetProfile(ctx *gin.Context) {
	sess := a.session(ctx)
	if sess == nil {
		ctx.JSON(http.StatusUnauthorized, utils.ResponseErr(2002, "sign in required"))
		return
	}
	profile := a.Console.Profile(ctx.Request.Context(), sess)
	if profile == nil {
		ctx.JSON(http.StatusNotFound, utils.ResponseErr(2004, "profile not found"))
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(profile))
}

func (a *DashboardAPI) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, utils.ResponseOK(a.Console.Settings(ctx.Request.Context())))
}

func (a *DashboardAPI) SaveSettings(ctx *gin.Context) {
	var settings db.Settings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	if err := a.Console.SaveSettings(ctx.Request.Context(), settings); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrInternal)
		return
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(settings))
}

func (a *DashboardAPI) lifecycleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, console.ErrNoSession):
		ctx.JSON(http.StatusUnauthorized, utils.ResponseErr(2002, "sign in required"))
	case errors.Is(err, console.ErrNotPermitted):
		ctx.JSON(http.StatusForbidden, utils.ErrForbidden)
	default:
		a.storeError(ctx, err)
	}
}

func (a *DashboardAPI) storeError(ctx *gin.Context, err error) {
	if store.IsAuthErr(err) {
		// Token-invalid store errors send the user back to sign-in.
		ctx.JSON(http.StatusUnauthorized, utils.ResponseErr(2002, "session expired, sign in again"))
		return
	}
	ctx.JSON(http.StatusBadGateway, utils.ResponseErr(2101, err.Error()))
}
