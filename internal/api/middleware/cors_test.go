package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/classquest/classquest-api/internal/config"
)

func TestConfigCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ConfigCORS(&config.APIConfig{AllowedCORSDomains: []string{"https://school.example"}}))
	router.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })

	tests := []struct {
		name       string
		origin     string
		wantStatus int
		wantHeader string
	}{
		{name: "allowed origin", origin: "https://school.example", wantStatus: http.StatusOK, wantHeader: "https://school.example"},
		{name: "foreign origin", origin: "https://evil.example", wantStatus: http.StatusForbidden, wantHeader: ""},
		{name: "same origin request", origin: "", wantStatus: http.StatusOK, wantHeader: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
