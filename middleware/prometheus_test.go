package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")
	unmatched := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before, beforeUnmatched := testutil.ToFloat64(counter), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/items/1", "/items/2"} {
		apitest.New().Handler(r).Get(path).Expect(t).Status(http.StatusNoContent).End()
	}
	apitest.New().Handler(r).Get("/nowhere").Expect(t).Status(http.StatusNotFound).End()

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
