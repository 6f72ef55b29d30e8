package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type scheduleRequest struct {
	BayNumber     int    `json:"bay_number"`
	ScheduledDate string `json:"scheduled_date"`
	Method        string `json:"method"`
	Note          string `json:"note"`
}

type fulfillRequest struct {
	PerformedDate string `json:"performed_date"`
}

// ScheduleRoutes registers the pending-schedule lifecycle endpoints.
func ScheduleRoutes(r *gin.RouterGroup) {

	r.GET("", func(c *gin.Context) {
		pending, err := Service(c).ListPending(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, pending)
	})

	r.POST("", func(c *gin.Context) {
		var req scheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}

		id, err := Service(c).Schedule(c.Request.Context(), req.BayNumber, req.ScheduledDate, req.Method, req.Note)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	// Fulfill in place: the pending entry itself becomes done.
	r.POST("/:id/fulfill", func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		var req fulfillRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				AbortWithError(c, ErrInvalidRequest)
				return
			}
		}

		ok, err := Service(c).Fulfill(c.Request.Context(), id, req.PerformedDate)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "schedule not found or not pending"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Alternate flow: record a fresh completion dated today and close the
	// schedule entry.
	r.POST("/:id/complete", func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		newID, err := Service(c).CompleteFromSchedule(c.Request.Context(), id)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": newID})
	})

	r.DELETE("/:id", func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ok, err := Service(c).Cancel(c.Request.Context(), id)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "schedule not found or not pending"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
