package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cronTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Configuration{
		Cron: config.CronConfig{Secret: secret},
	}

	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(CronAuthMiddleware(cfg))
	router.POST("/cron/run", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": types.GetTenantID(c.Request.Context()),
			"user_id":   types.GetUserID(c.Request.Context()),
		})
	})
	return router
}

func performCron(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/cron/run", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCronAuthMiddleware(t *testing.T) {
	t.Run("valid secret passes and runs as system", func(t *testing.T) {
		router := cronTestRouter("cron-secret")
		w := performCron(router, "Bearer cron-secret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), types.DefaultTenantID)
		assert.Contains(t, w.Body.String(), types.TriggeredBySystem)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := cronTestRouter("cron-secret")
		w := performCron(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		router := cronTestRouter("cron-secret")
		w := performCron(router, "Bearer wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		router := cronTestRouter("cron-secret")
		w := performCron(router, "Basic cron-secret")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty configured secret rejects everything", func(t *testing.T) {
		router := cronTestRouter("")
		w := performCron(router, "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
