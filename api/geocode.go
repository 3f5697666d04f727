package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultGeocodeLimit = 5

//	@Summary		Address autocomplete
//	@Description	Proxies address searches to the geocoding provider, pinned to PH
//	@Tags			geocode
//	@Produce		json
//	@Param			q		query		string	true	"Free-form address query"
//	@Param			limit	query		int		false	"Max suggestions (default 5)"
//	@Success		200		{array}		geocode.Suggestion
//	@Failure		400		{object}	object
//	@Router			/geocode [get]
func (server *Server) searchAddresses(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("q is required")))
		return
	}

	limit := defaultGeocodeLimit
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 || parsed > 20 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("limit must be between 1 and 20")))
			return
		}
		limit = parsed
	}

	suggestions, err := server.geocodeClient.Search(ctx, query, limit)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("geocode search failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "address lookup failed"})
		return
	}

	ctx.JSON(http.StatusOK, suggestions)
}
