package api

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type menuItemResponse struct {
	db.MenuItem
	EffectivePrice float64 `json:"effective_price"`
}

// effectivePrice resolves the price a customer pays right now, honoring an
// active discount window.
func effectivePrice(item db.MenuItem, now time.Time) float64 {
	if !item.DiscountActive || item.DiscountPrice == nil {
		return item.BasePrice
	}
	if item.DiscountStartDate != nil && now.Before(*item.DiscountStartDate) {
		return item.BasePrice
	}
	if item.DiscountEndDate != nil && now.After(*item.DiscountEndDate) {
		return item.BasePrice
	}
	return *item.DiscountPrice
}

func toMenuItemResponse(item db.MenuItem) menuItemResponse {
	return menuItemResponse{
		MenuItem:       item,
		EffectivePrice: effectivePrice(item, time.Now()),
	}
}

//	@Summary		List menu items
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Param			available	query		bool	false	"Only available items"
//	@Success		200			{array}		menuItemResponse
//	@Router			/menu-items [get]
func (server *Server) listMenuItems(ctx *gin.Context) {
	var params db.ListMenuItemsParams

	if category := ctx.Query("category"); category != "" {
		params.Category = &category
	}
	params.AvailableOnly = ctx.Query("available") == "true"

	items, err := server.dbStore.ListMenuItems(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	responses := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toMenuItemResponse(item))
	}

	ctx.JSON(http.StatusOK, responses)
}

//	@Summary		Get a menu item by slug
//	@Tags			menu
//	@Produce		json
//	@Param			slug	path		string	true	"Menu item slug"
//	@Success		200		{object}	menuItemResponse
//	@Failure		404		{object}	object
//	@Router			/menu-items/by-slug/{slug} [get]
func (server *Server) getMenuItemBySlug(ctx *gin.Context) {
	item, err := server.dbStore.GetMenuItemBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("menu item not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

type createMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	BasePrice   float64         `json:"base_price" binding:"required,gt=0"`
	Category    string          `json:"category" binding:"required"`
	Popular     bool            `json:"popular"`
	Available   *bool           `json:"available"`
	Variations  json.RawMessage `json:"variations"`
	AddOns      json.RawMessage `json:"add_ons"`
}

//	@Summary		Create a menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	menuItemResponse
//	@Security		accessToken
//	@Router			/menu-items [post]
func (server *Server) createMenuItem(ctx *gin.Context) {
	var req createMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	itemID, _ := uuid.NewV7()
	item, err := server.dbStore.CreateMenuItem(ctx, db.CreateMenuItemParams{
		ID:          itemID.String(),
		Name:        req.Name,
		Slug:        util.GenerateRandomSlug(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		Popular:     req.Popular,
		Available:   available,
		Variations:  req.Variations,
		AddOns:      req.AddOns,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, toMenuItemResponse(item))
}

type updateMenuItemRequest struct {
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	BasePrice         *float64        `json:"base_price"`
	Category          *string         `json:"category"`
	Popular           *bool           `json:"popular"`
	Available         *bool           `json:"available"`
	Variations        json.RawMessage `json:"variations"`
	AddOns            json.RawMessage `json:"add_ons"`
	DiscountPrice     *float64        `json:"discount_price"`
	DiscountStartDate *string         `json:"discount_start_date"`
	DiscountEndDate   *string         `json:"discount_end_date"`
	DiscountActive    *bool           `json:"discount_active"`
}

//	@Summary		Update a menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string					true	"Menu item ID"
//	@Param			request	body		updateMenuItemRequest	true	"Fields to change"
//	@Success		200		{object}	menuItemResponse
//	@Failure		404		{object}	object
//	@Security		accessToken
//	@Router			/menu-items/{itemID} [patch]
func (server *Server) updateMenuItem(ctx *gin.Context) {
	var req updateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	item, err := server.dbStore.UpdateMenuItem(ctx, db.UpdateMenuItemParams{
		ID:                ctx.Param("itemID"),
		Name:              req.Name,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		Category:          req.Category,
		Popular:           req.Popular,
		Available:         req.Available,
		Variations:        req.Variations,
		AddOns:            req.AddOns,
		DiscountPrice:     req.DiscountPrice,
		DiscountStartDate: req.DiscountStartDate,
		DiscountEndDate:   req.DiscountEndDate,
		DiscountActive:    req.DiscountActive,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("menu item not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

type updateMenuItemImageRequest struct {
	Image *multipart.FileHeader `form:"image" binding:"required"`
}

//	@Summary		Upload a menu item image
//	@Tags			menu
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			itemID	path		string	true	"Menu item ID"
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	menuItemResponse
//	@Security		accessToken
//	@Router			/menu-items/{itemID}/image [patch]
func (server *Server) updateMenuItemImage(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	var req updateMenuItemImageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	uploadedFileURL, err := server.uploadFileToCloudinary("menu_item", itemID, FolderMenuItems, req.Image)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	item, err := server.dbStore.UpdateMenuItemImage(ctx, db.UpdateMenuItemImageParams{
		ID:       itemID,
		ImageURL: uploadedFileURL,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("menu item not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

//	@Summary		Delete a menu item
//	@Tags			menu
//	@Param			itemID	path	string	true	"Menu item ID"
//	@Success		204
//	@Security		accessToken
//	@Router			/menu-items/{itemID} [delete]
func (server *Server) deleteMenuItem(ctx *gin.Context) {
	if err := server.dbStore.DeleteMenuItem(ctx, ctx.Param("itemID")); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
