package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type policyRequest struct {
	IntervalDays int `json:"interval_days"`
}

// PolicyRoutes exposes the global interval policy.
func PolicyRoutes(r *gin.RouterGroup) {

	r.GET("", func(c *gin.Context) {
		policy, err := Service(c).GetPolicy(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, policy)
	})

	r.PUT("", func(c *gin.Context) {
		var req policyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}

		if err := Service(c).SetPolicy(c.Request.Context(), req.IntervalDays); err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
