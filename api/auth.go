package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginAdminRequest struct {
	Password string `json:"password" binding:"required"`
}

type loginAdminResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

//	@Summary		Admin login
//	@Description	Exchanges the admin password for a JWT access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginAdminRequest	true	"Admin password"
//	@Success		200		{object}	loginAdminResponse
//	@Failure		401		{object}	object
//	@Router			/auth/admin/login [post]
func (server *Server) loginAdmin(ctx *gin.Context) {
	var req loginAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	err := bcrypt.CompareHashAndPassword([]byte(server.config.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(ErrInvalidCredentials))
		return
	}

	accessToken, payload, err := server.tokenMaker.CreateToken("admin", server.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, loginAdminResponse{
		AccessToken: accessToken,
		ExpiresAt:   payload.ExpiresAt.Time,
	})
}
