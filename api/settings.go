package api

import (
	"net/http"
	"strings"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/gin-gonic/gin"
)

// isSecretSetting reports whether a site-setting key holds a credential that
// must never reach the public settings endpoint.
func isSecretSetting(key string) bool {
	return strings.HasPrefix(key, "lalamove_api") || strings.Contains(key, "secret")
}

//	@Summary		Public site settings
//	@Description	Returns the site settings as a key/value map with credentials redacted
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	object
//	@Router			/settings [get]
func (server *Server) listSiteSettings(ctx *gin.Context) {
	settings, err := server.dbStore.ListSiteSettings(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		if isSecretSetting(setting.Key) {
			continue
		}
		values[setting.Key] = setting.Value
	}

	ctx.JSON(http.StatusOK, values)
}

type upsertSiteSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

//	@Summary		Create or update a site setting
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string						true	"Setting key"
//	@Param			request	body		upsertSiteSettingRequest	true	"Setting value"
//	@Success		200		{object}	db.SiteSetting
//	@Security		accessToken
//	@Router			/settings/{key} [put]
func (server *Server) upsertSiteSetting(ctx *gin.Context) {
	var req upsertSiteSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	settingType := req.Type
	if settingType == "" {
		settingType = "string"
	}

	setting, err := server.dbStore.UpsertSiteSetting(ctx, db.UpsertSiteSettingParams{
		Key:         ctx.Param("key"),
		Value:       req.Value,
		Type:        settingType,
		Description: req.Description,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, setting)
}
