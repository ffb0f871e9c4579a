// Package http exposes the application's use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PickerRegistry manages the set of pickers taking part in the automatic
// claim rotation. Implemented by the picker claim job.
type PickerRegistry interface {
	RegisterPicker(pickerID kernel.UUID)
	UnregisterPicker(pickerID kernel.UUID)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	transitionStatusHandler  commands.TransitionOrderStatusCommandHandler
	recordFulfillmentHandler commands.RecordFulfillmentCommandHandler
	confirmPaymentHandler    commands.ConfirmPaymentCommandHandler
	createTripHandler        commands.CreateTripCommandHandler
	closeTripHandler         commands.CloseTripCommandHandler
	setPartnerShiftHandler   commands.SetPartnerShiftCommandHandler
	addProductHandler        commands.AddProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	removeProductHandler     commands.RemoveProductCommandHandler

	// Picker claim rotation
	pickerRegistry PickerRegistry

	// Query handlers
	getActiveOrderHandler       queries.GetActiveOrderQueryHandler
	getDashboardCountsHandler   queries.GetDashboardCountsQueryHandler
	getPackedOrdersHandler      queries.GetPackedOrdersQueryHandler
	getAvailablePartnersHandler queries.GetAvailablePartnersQueryHandler
	getAuditLogsHandler         queries.GetAuditLogsQueryHandler
	getCatalogHandler           queries.GetCatalogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionStatusHandler commands.TransitionOrderStatusCommandHandler,
	recordFulfillmentHandler commands.RecordFulfillmentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	closeTripHandler commands.CloseTripCommandHandler,
	setPartnerShiftHandler commands.SetPartnerShiftCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	removeProductHandler commands.RemoveProductCommandHandler,
	pickerRegistry PickerRegistry,
	getActiveOrderHandler queries.GetActiveOrderQueryHandler,
	getDashboardCountsHandler queries.GetDashboardCountsQueryHandler,
	getPackedOrdersHandler queries.GetPackedOrdersQueryHandler,
	getAvailablePartnersHandler queries.GetAvailablePartnersQueryHandler,
	getAuditLogsHandler queries.GetAuditLogsQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		transitionStatusHandler:     transitionStatusHandler,
		recordFulfillmentHandler:    recordFulfillmentHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		createTripHandler:           createTripHandler,
		closeTripHandler:            closeTripHandler,
		setPartnerShiftHandler:      setPartnerShiftHandler,
		addProductHandler:           addProductHandler,
		updateProductHandler:        updateProductHandler,
		removeProductHandler:        removeProductHandler,
		pickerRegistry:              pickerRegistry,
		getActiveOrderHandler:       getActiveOrderHandler,
		getDashboardCountsHandler:   getDashboardCountsHandler,
		getPackedOrdersHandler:      getPackedOrdersHandler,
		getAvailablePartnersHandler: getAvailablePartnersHandler,
		getAuditLogsHandler:         getAuditLogsHandler,
		getCatalogHandler:           getCatalogHandler,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/active", s.GetActiveOrder)
	v1.GET("/orders/packed", s.GetPackedOrders)
	v1.POST("/orders/:id/status", s.TransitionOrderStatus)
	v1.POST("/orders/:id/fulfillment", s.RecordFulfillment)
	v1.POST("/orders/:id/payment", s.ConfirmPayment)
	v1.POST("/trips", s.CreateTrip)
	v1.POST("/trips/:id/close", s.CloseTrip)
	v1.PUT("/partners/:id/shift", s.SetPartnerShift)
	v1.GET("/partners/available", s.GetAvailablePartners)
	v1.POST("/pickers/:id/watch", s.WatchPicker)
	v1.DELETE("/pickers/:id/watch", s.UnwatchPicker)
	v1.GET("/catalog", s.GetCatalog)
	v1.POST("/products", s.AddProduct)
	v1.PUT("/products/:id", s.UpdateProduct)
	v1.DELETE("/products/:id", s.RemoveProduct)
	v1.GET("/dashboard", s.GetDashboardCounts)
	v1.GET("/audit", s.GetAuditLogs)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new customer order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, req.Address, req.Pincode, items, req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// TransitionOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, newStatus, actorID, req.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.transitionStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordFulfillment handles POST /api/v1/orders/:id/fulfillment.
func (s *Server) RecordFulfillment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RecordFulfillmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickerID, err := kernel.UUIDFromString(req.PickerID)
	if err != nil {
		return badRequest(ctx, "Invalid picker id")
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}

	cmd, err := commands.NewRecordFulfillmentCommand(orderID, pickerID, items, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.recordFulfillmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ConfirmPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateTrip handles POST /api/v1/trips - batches packed orders into a trip.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var req CreateTripRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewCreateTripCommand(orderIDs, partnerID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.createTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CloseTrip handles POST /api/v1/trips/:id/close.
func (s *Server) CloseTrip(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id")
	}

	var req CloseTripRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewCloseTripCommand(tripID, partnerID, req.ReturnCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.closeTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetPartnerShift handles PUT /api/v1/partners/:id/shift.
func (s *Server) SetPartnerShift(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	var req SetShiftRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPartnerShiftCommand(partnerID, req.ShiftOn)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.setPartnerShiftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// WatchPicker handles POST /api/v1/pickers/:id/watch - adds the picker to
// the automatic claim rotation. A picker opening their packing screen calls
// this so the claim job starts assigning orders to them.
func (s *Server) WatchPicker(ctx echo.Context) error {
	pickerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid picker id")
	}

	s.pickerRegistry.RegisterPicker(pickerID)
	return ctx.NoContent(http.StatusNoContent)
}

// UnwatchPicker handles DELETE /api/v1/pickers/:id/watch - removes the
// picker from the claim rotation.
func (s *Server) UnwatchPicker(ctx echo.Context) error {
	pickerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid picker id")
	}

	s.pickerRegistry.UnregisterPicker(pickerID)
	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrder handles GET /api/v1/orders/active - the customer tracking view.
func (s *Server) GetActiveOrder(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customer_id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetActiveOrderQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	active, err := s.getActiveOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "No active order")
		}
		return internalError(ctx, "Failed to retrieve active order")
	}

	return ctx.JSON(http.StatusOK, ActiveOrderResponse{
		ID:               active.ID.String(),
		Status:           active.Status,
		Address:          active.Address,
		Pincode:          active.Pincode,
		RouteKey:         active.RouteKey,
		PaymentConfirmed: active.PaymentConfirmed,
		Notes:            active.Notes,
	})
}

// GetDashboardCounts handles GET /api/v1/dashboard.
func (s *Server) GetDashboardCounts(ctx echo.Context) error {
	counts, err := s.getDashboardCountsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardCountsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve dashboard counts")
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		OrdersByStatus: counts.OrdersByStatus,
		ActiveTrips:    counts.ActiveTrips,
	})
}

// GetPackedOrders handles GET /api/v1/orders/packed - the admin batching view.
func (s *Server) GetPackedOrders(ctx echo.Context) error {
	packed, err := s.getPackedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPackedOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve packed orders")
	}

	response := make([]PackedOrderResponse, len(packed))
	for i, o := range packed {
		response[i] = PackedOrderResponse{
			ID:       o.ID.String(),
			RouteKey: o.RouteKey,
			Address:  o.Address,
			Pincode:  o.Pincode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailablePartners handles GET /api/v1/partners/available.
func (s *Server) GetAvailablePartners(ctx echo.Context) error {
	partners, err := s.getAvailablePartnersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailablePartnersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve available partners")
	}

	response := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		response[i] = PartnerResponse{
			ID:   p.ID.String(),
			Name: p.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditLogs handles GET /api/v1/audit.
func (s *Server) GetAuditLogs(ctx echo.Context) error {
	limit := defaultAuditLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, parseErr := parsePositiveInt(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetAuditLogsQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getAuditLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve audit logs")
	}

	response := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		response[i] = AuditLogResponse{
			UserID:    entry.UserID,
			Role:      entry.Role,
			Action:    entry.Action,
			Reason:    entry.Reason,
			Timestamp: entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCatalog handles GET /api/v1/catalog - the customer storefront view.
func (s *Server) GetCatalog(ctx echo.Context) error {
	catalog, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve catalog")
	}

	response := make([]CatalogItemResponse, len(catalog))
	for i, p := range catalog {
		response[i] = CatalogItemResponse{
			ID:            p.ID.String(),
			Name:          p.Name,
			Category:      p.Category,
			UnitLabel:     p.UnitLabel,
			Price:         p.Price,
			AvailableQty:  p.AvailableQty,
			NewlyLaunched: p.NewlyLaunched,
			OutOfStock:    p.OutOfStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddProduct handles POST /api/v1/products - adds a catalog item.
func (s *Server) AddProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(
		productID, req.Name, req.Category, req.UnitLabel, req.Price, req.AvailableQty, req.NewlyLaunched, actorID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.addProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id - edits a catalog item.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Category, req.UnitLabel, req.Price, req.AvailableQty, req.NewlyLaunched, req.Active, actorID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveProduct handles DELETE /api/v1/products/:id - removes a catalog item.
// The acting admin is identified by the actor_id query parameter.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	actorID, err := kernel.UUIDFromString(ctx.QueryParam("actor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewRemoveProductCommand(productID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.removeProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

func itemsFromRequest(reqItems []ItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(reqItems))
	for _, ri := range reqItems {
		item, err := order.NewItem(ri.ID, ri.Name, ri.Price, ri.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
