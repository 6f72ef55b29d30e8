package routes

import (
	"fmt"
	"net/http"
	"strings"

	"bay-sanitation/internal/status"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

// Helper function to generate an absolute URL for a given path
func urlFor(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, path)
}

// BayRoutes registers per-bay lookups: history, next due date and a
// printable QR label linking to the bay's history endpoint.
func BayRoutes(r *gin.RouterGroup) {

	r.GET("/:bay/records", func(c *gin.Context) {
		bay, err := paramBay(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		records, err := Service(c).ListBayRecords(c.Request.Context(), bay)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	})

	r.GET("/:bay/next-due", func(c *gin.Context) {
		bay, err := paramBay(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		due, err := Service(c).NextDueDate(c.Request.Context(), bay)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if due == nil {
			c.JSON(http.StatusOK, gin.H{"bay_number": bay, "next_due_date": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bay_number": bay, "next_due_date": due.Format(status.DateLayout)})
	})

	// QR label meant to be printed and stuck on the bay.
	r.GET("/:bay/qr.png", func(c *gin.Context) {
		bay, err := paramBay(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		url := urlFor(c, fmt.Sprintf("%s/%d/records", r.BasePath(), bay))
		png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	})
}
