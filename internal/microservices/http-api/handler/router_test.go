package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter_RequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "configured", timeout: 80 * time.Millisecond, want: 80 * time.Millisecond},
		{name: "zero falls back to default", timeout: 0, want: DefaultRequestTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(Services{}, RouterOptions{RequestTimeout: tt.timeout})

			var remaining time.Duration
			r.GET("/deadline", func(c *gin.Context) {
				deadline, ok := c.Request.Context().Deadline()
				if ok {
					remaining = time.Until(deadline)
				}
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deadline", nil))

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Greater(t, remaining, time.Duration(0))
			assert.LessOrEqual(t, remaining, tt.want)
			assert.Greater(t, remaining, tt.want/2)
		})
	}
}
