package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type createOrderItemRequest struct {
	MenuItemID        *string         `json:"menu_item_id"`
	MenuItemName      string          `json:"menu_item_name" binding:"required"`
	Quantity          int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice         float64         `json:"unit_price" binding:"min=0"`
	SelectedVariation json.RawMessage `json:"selected_variation"`
	SelectedAddOns    json.RawMessage `json:"selected_add_ons"`
}

type createOrderRequest struct {
	CustomerName        string                   `json:"customer_name" binding:"required"`
	ContactNumber       string                   `json:"contact_number" binding:"required"`
	ServiceType         db.ServiceType           `json:"service_type" binding:"required,oneof=dine-in pickup delivery"`
	Address             *string                  `json:"address"`
	Landmark            *string                  `json:"landmark"`
	PickupTime          *string                  `json:"pickup_time"`
	PartySize           *int64                   `json:"party_size"`
	DineInTime          *string                  `json:"dine_in_time"`
	PaymentMethod       db.PaymentMethod         `json:"payment_method" binding:"required,oneof=gcash maya bank-transfer"`
	ReferenceNumber     *string                  `json:"reference_number"`
	Total               float64                  `json:"total" binding:"required,gt=0"`
	Notes               *string                  `json:"notes"`
	DeliveryFee         *float64                 `json:"delivery_fee"`
	LalamoveQuotationID *string                  `json:"lalamove_quotation_id"`
	BranchID            *string                  `json:"branch_id"`
	Items               []createOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

//	@Summary		Place an order
//	@Description	Creates the order and its items atomically, then fans out notifications and the delivery-order task
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOrderRequest	true	"Order"
//	@Success		201		{object}	db.CreateOrderTxResult
//	@Failure		400		{object}	object
//	@Router			/orders [post]
func (server *Server) createOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.ServiceType == db.ServiceTypeDelivery && (req.Address == nil || *req.Address == "") {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("address is required for delivery orders")))
		return
	}

	items := make([]db.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, db.CreateOrderItemInput{
			MenuItemID:        item.MenuItemID,
			MenuItemName:      item.MenuItemName,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			SelectedVariation: item.SelectedVariation,
			SelectedAddOns:    item.SelectedAddOns,
		})
	}

	result, err := server.dbStore.CreateOrderTx(ctx, db.CreateOrderTxParams{
		CustomerName:        req.CustomerName,
		ContactNumber:       req.ContactNumber,
		ServiceType:         req.ServiceType,
		Address:             req.Address,
		Landmark:            req.Landmark,
		PickupTime:          req.PickupTime,
		PartySize:           req.PartySize,
		DineInTime:          req.DineInTime,
		PaymentMethod:       req.PaymentMethod,
		ReferenceNumber:     req.ReferenceNumber,
		Total:               req.Total,
		Notes:               req.Notes,
		CustomerIP:          ctx.ClientIP(),
		DeliveryFee:         req.DeliveryFee,
		LalamoveQuotationID: req.LalamoveQuotationID,
		BranchID:            req.BranchID,
		Items:               items,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.eventSender.Broadcast(event.Event{
		Topic: event.TopicOrders,
		Type:  event.EventTypeOrderCreated,
		Data:  result.Order,
	})

	err = server.taskDistributor.DistributeTaskNotifyNewOrder(ctx, &worker.PayloadNotifyNewOrder{
		OrderID: result.Order.ID,
	}, asynq.Queue(worker.QueueDefault))
	if err != nil {
		log.Error().Err(err).Str("order_id", result.Order.ID).Msg("failed to enqueue notify task")
	}

	// A delivery order that already holds a quotation is confirmed with the
	// courier in the background. Failures there never undo the order itself.
	if req.ServiceType == db.ServiceTypeDelivery && req.LalamoveQuotationID != nil && *req.LalamoveQuotationID != "" {
		server.enqueueDeliveryOrderTask(ctx, result.Order)
	}

	ctx.JSON(http.StatusCreated, result)
}

func (server *Server) enqueueDeliveryOrderTask(ctx *gin.Context, order db.Order) {
	storeConfig, err := server.loadStoreConfig(ctx)
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("store config unavailable, skipping delivery order task")
		return
	}

	err = server.taskDistributor.DistributeTaskCreateDeliveryOrder(ctx, &worker.PayloadCreateDeliveryOrder{
		OrderID: order.ID,
		Store:   storeConfig,
	}, asynq.Queue(worker.QueueCritical), asynq.MaxRetry(0))
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to enqueue delivery order task")
	}
}

// loadStoreConfig assembles the Lalamove pickup configuration from the
// current site settings.
func (server *Server) loadStoreConfig(ctx *gin.Context) (lalamove.StoreConfig, error) {
	settings, err := server.dbStore.ListSiteSettings(ctx)
	if err != nil {
		return lalamove.StoreConfig{}, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	return lalamove.ConfigFromSettings(values)
}

//	@Summary		List orders
//	@Description	Lists orders newest first, narrowed by optional filters
//	@Tags			orders
//	@Produce		json
//	@Param			status			query		string	false	"Order status"
//	@Param			service_type	query		string	false	"Service type"
//	@Param			date_from		query		string	false	"RFC 3339 lower bound"
//	@Param			date_to			query		string	false	"RFC 3339 upper bound"
//	@Param			search			query		string	false	"Order number, customer name, or contact number"
//	@Success		200				{array}		db.Order
//	@Security		accessToken
//	@Router			/orders [get]
func (server *Server) listOrders(ctx *gin.Context) {
	var params db.ListOrdersParams

	if status := ctx.Query("status"); status != "" {
		orderStatus := db.OrderStatus(status)
		params.Status = &orderStatus
	}
	if serviceType := ctx.Query("service_type"); serviceType != "" {
		st := db.ServiceType(serviceType)
		params.ServiceType = &st
	}
	if dateFrom := ctx.Query("date_from"); dateFrom != "" {
		t, err := time.Parse(time.RFC3339, dateFrom)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid date_from")))
			return
		}
		params.DateFrom = &t
	}
	if dateTo := ctx.Query("date_to"); dateTo != "" {
		t, err := time.Parse(time.RFC3339, dateTo)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid date_to")))
			return
		}
		params.DateTo = &t
	}
	if search := ctx.Query("search"); search != "" {
		params.Search = &search
	}

	orders, err := server.dbStore.ListOrders(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

type orderDetailsResponse struct {
	db.Order
	Items []db.OrderItem `json:"items"`
}

//	@Summary		Get order details
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	orderDetailsResponse
//	@Failure		404		{object}	object
//	@Security		accessToken
//	@Router			/orders/{orderID} [get]
func (server *Server) getOrderDetails(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	order, err := server.dbStore.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	items, err := server.dbStore.ListOrderItemsByOrderID(ctx, order.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orderDetailsResponse{Order: order, Items: items})
}

type updateOrderStatusRequest struct {
	Status db.OrderStatus `json:"status" binding:"required,oneof=pending confirmed preparing ready out_for_delivery completed cancelled"`
}

//	@Summary		Update order status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string						true	"Order ID"
//	@Param			request	body		updateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	db.Order
//	@Failure		404		{object}	object
//	@Security		accessToken
//	@Router			/orders/{orderID}/status [patch]
func (server *Server) updateOrderStatus(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	var req updateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.dbStore.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:     orderID,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.eventSender.Broadcast(event.Event{
		Topic: event.TopicOrders,
		Type:  event.EventTypeOrderUpdated,
		Data:  order,
	})

	ctx.JSON(http.StatusOK, order)
}

type bulkUpdateOrderStatusRequest struct {
	IDs    []string       `json:"ids" binding:"required,min=1"`
	Status db.OrderStatus `json:"status" binding:"required,oneof=pending confirmed preparing ready out_for_delivery completed cancelled"`
}

//	@Summary		Update the status of several orders at once
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bulkUpdateOrderStatusRequest	true	"Order IDs and new status"
//	@Success		200		{object}	object
//	@Security		accessToken
//	@Router			/orders/bulk-status [patch]
func (server *Server) bulkUpdateOrderStatus(ctx *gin.Context) {
	var req bulkUpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	err := server.dbStore.BulkUpdateOrderStatus(ctx, db.BulkUpdateOrderStatusParams{
		IDs:    req.IDs,
		Status: req.Status,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.eventSender.Broadcast(event.Event{
		Topic: event.TopicOrders,
		Type:  event.EventTypeOrderUpdated,
		Data:  gin.H{"ids": req.IDs, "status": req.Status},
	})

	ctx.JSON(http.StatusOK, gin.H{"updated": len(req.IDs)})
}

//	@Summary		Dashboard order statistics
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	db.OrderStats
//	@Security		accessToken
//	@Router			/orders/stats [get]
func (server *Server) getOrderStats(ctx *gin.Context) {
	stats, err := server.dbStore.GetOrderStats(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
