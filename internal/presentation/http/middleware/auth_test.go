package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performWithRole(role any, setRole bool, guard gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)
	if setRole {
		c.Set("user_role", role)
	}
	guard(c)
	return w
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole("admin")

	assert.Equal(t, http.StatusOK, performWithRole("admin", true, guard).Code)
	assert.Equal(t, http.StatusForbidden, performWithRole("staff", true, guard).Code)
	assert.Equal(t, http.StatusForbidden, performWithRole(nil, false, guard).Code)
	assert.Equal(t, http.StatusForbidden, performWithRole(42, true, guard).Code)
}

func TestRequireRole_AnyOf(t *testing.T) {
	guard := RequireRole("admin", "staff")

	assert.Equal(t, http.StatusOK, performWithRole("staff", true, guard).Code)
	assert.Equal(t, http.StatusForbidden, performWithRole("viewer", true, guard).Code)
}
