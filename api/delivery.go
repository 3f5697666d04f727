package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const deliveryWebhookSignatureHeader = "X-LLM-Signature"

// storeConfigRequest is the pickup-side configuration the storefront sends
// with every proxied delivery call.
type storeConfigRequest struct {
	Market         string   `json:"market"`
	ServiceType    string   `json:"serviceType"`
	Sandbox        bool     `json:"sandbox"`
	StoreName      string   `json:"storeName"`
	StorePhone     string   `json:"storePhone"`
	StoreAddress   string   `json:"storeAddress"`
	StoreLatitude  *float64 `json:"storeLatitude"`
	StoreLongitude *float64 `json:"storeLongitude"`
}

func (r *storeConfigRequest) validate() error {
	switch {
	case r.Market == "":
		return errors.New("market is required")
	case r.ServiceType == "":
		return errors.New("serviceType is required")
	case r.StoreName == "":
		return errors.New("storeName is required")
	case r.StorePhone == "":
		return errors.New("storePhone is required")
	case r.StoreAddress == "":
		return errors.New("storeAddress is required")
	case r.StoreLatitude == nil:
		return errors.New("storeLatitude is required")
	case r.StoreLongitude == nil:
		return errors.New("storeLongitude is required")
	}
	return nil
}

func (r *storeConfigRequest) toStoreConfig() lalamove.StoreConfig {
	return lalamove.StoreConfig{
		Market:         r.Market,
		ServiceType:    r.ServiceType,
		Sandbox:        r.Sandbox,
		StoreName:      r.StoreName,
		StorePhone:     r.StorePhone,
		StoreAddress:   r.StoreAddress,
		StoreLatitude:  *r.StoreLatitude,
		StoreLongitude: *r.StoreLongitude,
	}
}

type deliveryQuoteRequest struct {
	storeConfigRequest
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`
}

type deliveryOrderRequest struct {
	storeConfigRequest
	QuotationID      string         `json:"quotationId"`
	RecipientName    string         `json:"recipientName"`
	RecipientPhone   string         `json:"recipientPhone"`
	RecipientRemarks string         `json:"recipientRemarks"`
	Metadata         map[string]any `json:"metadata"`
}

//	@Summary		Proxy a delivery request to Lalamove
//	@Description	Dispatches on the action slug: "quote" requests a price quotation, "order" confirms a quotation into a delivery order
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			action	path		string	true	"quote or order"
//	@Success		200		{object}	object
//	@Failure		400		{object}	object
//	@Failure		405		{object}	object
//	@Router			/delivery/{action} [post]
func (server *Server) handleDeliveryAction(ctx *gin.Context) {
	switch ctx.Param("action") {
	case "quote":
		server.handleDeliveryQuote(ctx)
	case "order":
		server.handleDeliveryOrder(ctx)
	default:
		ctx.JSON(http.StatusMethodNotAllowed, errorResponse(ErrUnknownAction))
	}
}

func (server *Server) handleDeliveryQuote(ctx *gin.Context) {
	var req deliveryQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	switch {
	case req.DeliveryAddress == "":
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("deliveryAddress is required")))
		return
	case req.DeliveryLat == nil || req.DeliveryLng == nil:
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("deliveryLat and deliveryLng are required")))
		return
	}
	if err := req.validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	quote, err := server.deliveryService.RequestQuote(ctx, req.toStoreConfig(), req.DeliveryAddress, lalamove.Coordinates{
		Lat: *req.DeliveryLat,
		Lng: *req.DeliveryLng,
	})
	if err != nil {
		server.writeDeliveryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, quote)
}

func (server *Server) handleDeliveryOrder(ctx *gin.Context) {
	var req deliveryOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	switch {
	case req.QuotationID == "":
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("quotationId is required")))
		return
	case req.RecipientName == "":
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("recipientName is required")))
		return
	case req.RecipientPhone == "":
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("recipientPhone is required")))
		return
	}
	if err := req.validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.deliveryService.CreateOrder(ctx, lalamove.CreateOrderParams{
		QuotationID:      req.QuotationID,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientRemarks: req.RecipientRemarks,
		Metadata:         req.Metadata,
		Store:            req.toStoreConfig(),
	})
	if err != nil {
		server.writeDeliveryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// writeDeliveryError maps a proxy failure to the client response. The raw
// upstream body is only ever logged; the client gets the upstream status
// with a generic message.
func (server *Server) writeDeliveryError(ctx *gin.Context, err error) {
	var upstreamErr *lalamove.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Error().
			Int("upstream_status", upstreamErr.Status).
			Str("upstream_body", upstreamErr.Body).
			Msg("delivery provider rejected the request")
		ctx.JSON(upstreamErr.Status, gin.H{"error": "delivery provider rejected the request"})
		return
	}

	log.Error().Err(err).Msg("delivery request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process delivery request"})
}

//	@Summary		Lalamove status webhook
//	@Description	Receives delivery status callbacks and mirrors them onto the matching order
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object
//	@Failure		401	{object}	object
//	@Router			/delivery/webhook [post]
func (server *Server) handleDeliveryWebhook(ctx *gin.Context) {
	rawBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	signature := ctx.GetHeader(deliveryWebhookSignatureHeader)
	if !lalamove.VerifyWebhookSignature(server.config.LalamoveWebhookSecret, string(rawBody), signature) {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("invalid webhook signature")))
		return
	}

	var webhookEvent lalamove.WebhookEvent
	if err = json.Unmarshal(rawBody, &webhookEvent); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if webhookEvent.Data.Order.OrderID == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("missing order ID in webhook payload")))
		return
	}

	err = server.dbStore.UpdateOrderDeliveryStatus(ctx, db.UpdateOrderDeliveryStatusParams{
		LalamoveOrderID: webhookEvent.Data.Order.OrderID,
		LalamoveStatus:  webhookEvent.Data.Order.Status,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	order, err := server.dbStore.GetOrderByLalamoveOrderID(ctx, webhookEvent.Data.Order.OrderID)
	if err == nil {
		server.eventSender.Broadcast(event.Event{
			Topic: event.TopicOrders,
			Type:  event.EventTypeDeliveryUpdated,
			Data:  order,
		})
	} else if !errors.Is(err, db.ErrRecordNotFound) {
		log.Error().Err(err).
			Str("lalamove_order_id", webhookEvent.Data.Order.OrderID).
			Msg("failed to load order for webhook broadcast")
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("processed %s", webhookEvent.EventType)})
}
