package routes

import (
	"strconv"

	"bay-sanitation/internal/sanitation"

	"github.com/gin-gonic/gin"
)

// Context keys set by the server assembly middleware.
const (
	CtxSanitation = "Sanitation"
	CtxSessions   = "Sessions"
	CtxAuth       = "Authenticator"
)

// Service pulls the sanitation engine out of the request context.
func Service(c *gin.Context) *sanitation.Service {
	return c.MustGet(CtxSanitation).(*sanitation.Service)
}

func paramID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidParameter
	}
	return id, nil
}

func paramBay(c *gin.Context) (int, error) {
	bay, err := strconv.Atoi(c.Param("bay"))
	if err != nil || bay <= 0 {
		return 0, ErrInvalidParameter
	}
	return bay, nil
}
