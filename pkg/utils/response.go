package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every 4xx/5xx reply.
type ErrorBody struct {
	Error string `json:"error"`
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

