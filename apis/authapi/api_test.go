package authapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/auth"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func getMockAuthAPI(a *mock.MockAuthClient) *AuthAPI {
	return &AuthAPI{
		Auth:   a,
		logger: log.Logger("auth_api"),
	}
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := mock.NewMockAuthClient(ctrl)
	injector := configs.GetInjector()
	injector.Map(a)
	Register(injector, gin.New())
}

func TestAuthAPI_BaseURL(t *testing.T) {
	u := &AuthAPI{}
	assert.Equal(t, "api/v1/auth", u.BaseURL())
}

func TestSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := mock.NewMockAuthClient(ctrl)
	u := getMockAuthAPI(a)

	g := gin.New()
	g.POST("/sign_in", u.SignIn)

	t.Run("rejects incomplete payloads", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_in", bytes.NewBufferString(`{"email":"x@example.com"}`))
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad credentials are unauthorized", func(t *testing.T) {
		a.EXPECT().SignIn(gomock.Any(), "x@example.com", "wrong").
			Return(nil, errors.New("auth provider: Invalid login credentials"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_in",
			bytes.NewBufferString(`{"email":"x@example.com","password":"wrong"}`))
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signed in", func(t *testing.T) {
		a.EXPECT().SignIn(gomock.Any(), "x@example.com", "pw").
			Return(&auth.Session{UserID: "u-1", Email: "x@example.com", Token: "tok-1"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_in",
			bytes.NewBufferString(`{"email":"x@example.com","password":"pw"}`))
		g.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "tok-1", resp.Data["token"])
		assert.Equal(t, "u-1", resp.Data["user_id"])
	})
}

func TestSignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := mock.NewMockAuthClient(ctrl)
	u := getMockAuthAPI(a)

	g := gin.New()
	g.POST("/sign_up", u.SignUp)

	t.Run("created", func(t *testing.T) {
		a.EXPECT().SignUp(gomock.Any(), "new@example.com", "pw").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_up",
			bytes.NewBufferString(`{"email":"new@example.com","password":"pw"}`))
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("provider rejection", func(t *testing.T) {
		a.EXPECT().SignUp(gomock.Any(), "new@example.com", "pw").
			Return(errors.New("auth provider: already registered"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_up",
			bytes.NewBufferString(`{"email":"new@example.com","password":"pw"}`))
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := mock.NewMockAuthClient(ctrl)
	u := getMockAuthAPI(a)

	g := gin.New()
	g.POST("/sign_out", u.SignOut)

	t.Run("revokes the presented token", func(t *testing.T) {
		a.EXPECT().SignOut(gomock.Any(), "tok-1").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_out", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("upstream failure is still ok", func(t *testing.T) {
		a.EXPECT().SignOut(gomock.Any(), "tok-1").Return(errors.New("down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_out", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token skips the upstream call", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/sign_out", nil)
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
