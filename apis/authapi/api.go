package authapi

import (
	"net/http"
	"strings"

	"github.com/codegangsta/inject"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/apis/common"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/utils"
)

type AuthAPI struct {
	Auth   auth.Client `inject:"auth"`
	logger zerolog.Logger
}

func Register(injector inject.Injector, router *gin.Engine) {
	logger := log.Logger("auth_api")
	api := &AuthAPI{logger: logger}
	if err := injector.Apply(api); err != nil {
		logger.Fatal().Err(err).Msg("Failed to init auth api.")
	}
	common.RegisterGinGroupHandler(&router.RouterGroup, api)
}

func (a *AuthAPI) BaseURL() string {
	return "api/v1/auth"
}

func (a *AuthAPI) Middlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{}
}

func (a *AuthAPI) Register(group *gin.RouterGroup) {
	group.POST("/sign_in", a.SignIn)
	group.POST("/sign_up", a.SignUp)
	group.POST("/sign_out", a.SignOut)
}

type credentialsReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthAPI) SignIn(ctx *gin.Context) {
	var req credentialsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	sess, err := a.Auth.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Invalid credentials surface as a visible message, nothing more.
		ctx.JSON(http.StatusUnauthorized, utils.ResponseErr(2002, err.Error()))
		return
	}
	a.logger.Info().Str("user_id", sess.UserID).Msg("user signed in")
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{
		"token":   sess.Token,
		"user_id": sess.UserID,
		"email":   sess.Email,
	}))
}

func (a *AuthAPI) SignUp(ctx *gin.Context) {
	var req credentialsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrParameters)
		return
	}
	if err := a.Auth.SignUp(ctx.Request.Context(), req.Email, req.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ResponseErr(2002, err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, utils.ResponseOK(map[string]interface{}{}))
}

// SignOut best-effort revokes the token upstream; the client drops its
// copy either way.
func (a *AuthAPI) SignOut(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token != "" && token != header {
		if err := a.Auth.SignOut(ctx.Request.Context(), token); err != nil {
			a.logger.Warn().Err(err).Msg("sign out upstream failed")
		}
	}
	ctx.JSON(http.StatusOK, utils.ResponseOK(map[string]interface{}{}))
}
