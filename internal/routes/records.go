package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type recordRequest struct {
	BayNumber     int    `json:"bay_number"`
	PerformedDate string `json:"performed_date"`
	Method        string `json:"method"`
	Note          string `json:"note"`
}

// RecordRoutes registers CRUD on completed disinfection logs plus the
// aggregated report.
func RecordRoutes(r *gin.RouterGroup) {

	r.GET("", func(c *gin.Context) {
		records, err := Service(c).ListDisinfections(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	})

	r.POST("", func(c *gin.Context) {
		var req recordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}

		id, err := Service(c).CreateDisinfection(c.Request.Context(), req.BayNumber, req.PerformedDate, req.Method, req.Note)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	r.PUT("/:id", func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		var req recordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}

		if err := Service(c).UpdateDisinfection(c.Request.Context(), id, req.BayNumber, req.PerformedDate, req.Method, req.Note); err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.DELETE("/:id", func(c *gin.Context) {
		id, err := paramID(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		existed, err := Service(c).DeleteDisinfection(c.Request.Context(), id)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "existed": existed})
	})
}

// ReportRoute serves the aggregated status report.
func ReportRoute(r *gin.RouterGroup) {
	r.GET("", func(c *gin.Context) {
		report, err := Service(c).BuildReport(c.Request.Context(), time.Now().UTC())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	})
}
