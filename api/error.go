package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrUnknownAction      = errors.New("unsupported delivery action")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
