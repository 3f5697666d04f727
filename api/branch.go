package api

import (
	"errors"
	"net/http"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//	@Summary		List branches
//	@Description	Public listing returns active branches only; admins see all with ?all=true
//	@Tags			branches
//	@Produce		json
//	@Param			all	query		bool	false	"Include inactive branches"
//	@Success		200	{array}		db.Branch
//	@Router			/branches [get]
func (server *Server) listBranches(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"

	branches, err := server.dbStore.ListBranches(ctx, activeOnly)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, branches)
}

type createBranchRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	IsMain    bool    `json:"is_main"`
	IsActive  *bool   `json:"is_active"`
}

//	@Summary		Create a branch
//	@Tags			branches
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createBranchRequest	true	"Branch"
//	@Success		201		{object}	db.Branch
//	@Security		accessToken
//	@Router			/branches [post]
func (server *Server) createBranch(ctx *gin.Context) {
	var req createBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	branchID, _ := uuid.NewV7()
	branch, err := server.dbStore.CreateBranch(ctx, db.CreateBranchParams{
		ID:        branchID.String(),
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsMain:    req.IsMain,
		IsActive:  isActive,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, branch)
}

type updateBranchRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Phone     *string  `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsMain    *bool    `json:"is_main"`
	IsActive  *bool    `json:"is_active"`
}

//	@Summary		Update a branch
//	@Tags			branches
//	@Accept			json
//	@Produce		json
//	@Param			branchID	path		string				true	"Branch ID"
//	@Param			request		body		updateBranchRequest	true	"Fields to change"
//	@Success		200			{object}	db.Branch
//	@Failure		404			{object}	object
//	@Security		accessToken
//	@Router			/branches/{branchID} [patch]
func (server *Server) updateBranch(ctx *gin.Context) {
	var req updateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	branch, err := server.dbStore.UpdateBranch(ctx, db.UpdateBranchParams{
		ID:        ctx.Param("branchID"),
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsMain:    req.IsMain,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("branch not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, branch)
}

//	@Summary		Delete a branch
//	@Tags			branches
//	@Param			branchID	path	string	true	"Branch ID"
//	@Success		204
//	@Security		accessToken
//	@Router			/branches/{branchID} [delete]
func (server *Server) deleteBranch(ctx *gin.Context) {
	if err := server.dbStore.DeleteBranch(ctx, ctx.Param("branchID")); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
