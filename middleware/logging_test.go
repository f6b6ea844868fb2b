package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
)

func tracedRouter() *gin.Engine {
	r := gin.New()
	r.Use(LoggingMiddleware(), PrometheusMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestLoggingMiddleware_PrefersTraceParent(t *testing.T) {
	apitest.New().
		Handler(tracedRouter()).
		Get("/ping").
		Header(TraceParentHeader, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01").
		Header(TraceIDHeader, "ignored").
		Expect(t).
		Status(http.StatusOK).
		Header(TraceIDHeader, "4bf92f3577b34da6a3ce929d0e0e4736").
		Body("4bf92f3577b34da6a3ce929d0e0e4736").
		End()
}

func TestLoggingMiddleware_FallsBackToHeader(t *testing.T) {
	apitest.New().
		Handler(tracedRouter()).
		Get("/ping").
		Header(TraceIDHeader, "abc123").
		Expect(t).
		Header(TraceIDHeader, "abc123").
		End()
}

func TestGenerateTraceID(t *testing.T) {
	a, b := generateTraceID(), generateTraceID()

	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}
