package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/stock"

	"github.com/labstack/echo/v4"
)

// Server exposes the warehouse over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addStockHandler  commands.AddStockCommandHandler
	packOrderHandler commands.PackOrderCommandHandler

	// Query handlers
	getInventoryHandler     queries.GetInventoryQueryHandler
	getPackedParcelsHandler queries.GetPackedParcelsQueryHandler
	getAlertLogHandler      queries.GetAlertLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addStockHandler commands.AddStockCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getPackedParcelsHandler queries.GetPackedParcelsQueryHandler,
	getAlertLogHandler queries.GetAlertLogQueryHandler,
) *Server {
	return &Server{
		addStockHandler:         addStockHandler,
		packOrderHandler:        packOrderHandler,
		getInventoryHandler:     getInventoryHandler,
		getPackedParcelsHandler: getPackedParcelsHandler,
		getAlertLogHandler:      getAlertLogHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/stock", s.AddStock)
	e.POST("/api/v1/parcels", s.PackOrder)
	e.GET("/api/v1/inventory", s.GetInventory)
	e.GET("/api/v1/parcels", s.GetPackedParcels)
	e.GET("/api/v1/alerts", s.GetAlerts)
}

// Error is the JSON error body returned on failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BatchRequest carries the raw comma-separated product codes for stock
// additions and order packing alike.
type BatchRequest struct {
	Codes string `json:"codes"`
}

// NoticeResponse is one diagnostic raised while processing a batch or an
// order. Kind is a stable identifier; Message is the human-readable form.
type NoticeResponse struct {
	Kind    string `json:"kind"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// AddStockResponse reports the outcome of a stock addition.
type AddStockResponse struct {
	Notices []NoticeResponse `json:"notices"`
}

// PackOrderResponse reports the outcome of a pack request. Packed is
// false when nothing could be assembled, in which case no parcel was
// archived.
type PackOrderResponse struct {
	Packed    bool             `json:"packed"`
	ItemCount int              `json:"itemCount"`
	Notices   []NoticeResponse `json:"notices"`
}

// InventoryLineResponse is one product line of the inventory report.
type InventoryLineResponse struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Low      bool   `json:"low"`
}

// ParcelResponse is one archived parcel, items listed top of the pile
// first.
type ParcelResponse struct {
	Number int                  `json:"number"`
	ID     string               `json:"id"`
	Items  []ParcelItemResponse `json:"items"`
}

// ParcelItemResponse is one item inside an archived parcel.
type ParcelItemResponse struct {
	Code   string `json:"code"`
	Volume int    `json:"volume"`
}

// AlertLogResponse is the pending alert log, oldest alert first.
type AlertLogResponse struct {
	Codes    []string `json:"codes"`
	Capacity int      `json:"capacity"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddStock handles POST /api/v1/stock - adds a batch of product codes.
func (s *Server) AddStock(ctx echo.Context) error {
	var req BatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddStockCommand(req.Codes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid batch: " + err.Error(),
		})
	}

	notices, err := s.addStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add stock",
		})
	}

	return ctx.JSON(http.StatusOK, AddStockResponse{Notices: toNoticeResponses(notices)})
}

// PackOrder handles POST /api/v1/parcels - assembles an order into a parcel.
func (s *Server) PackOrder(ctx echo.Context) error {
	var req BatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPackOrderCommand(req.Codes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order: " + err.Error(),
		})
	}

	result, err := s.packOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to pack order",
		})
	}

	response := PackOrderResponse{
		Packed:  result.Packed(),
		Notices: toNoticeResponses(result.Notices),
	}
	if result.Packed() {
		response.ItemCount = result.Parcel.Size()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInventory handles GET /api/v1/inventory - retrieves all stock levels.
func (s *Server) GetInventory(ctx echo.Context) error {
	query := queries.NewGetInventoryQuery()

	lines, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve inventory",
		})
	}

	response := make([]InventoryLineResponse, len(lines))
	for i, line := range lines {
		response[i] = InventoryLineResponse{
			Code:     line.Code,
			Quantity: line.Quantity,
			Low:      line.Low,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPackedParcels handles GET /api/v1/parcels - retrieves the parcel archive.
func (s *Server) GetPackedParcels(ctx echo.Context) error {
	query := queries.NewGetPackedParcelsQuery()

	parcels, err := s.getPackedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve parcels",
		})
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		items := make([]ParcelItemResponse, len(p.Items))
		for j, item := range p.Items {
			items[j] = ParcelItemResponse{Code: item.Code, Volume: item.Volume}
		}
		response[i] = ParcelResponse{
			Number: p.Number,
			ID:     p.ID.String(),
			Items:  items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAlerts handles GET /api/v1/alerts - retrieves the pending alert log.
func (s *Server) GetAlerts(ctx echo.Context) error {
	query := queries.NewGetAlertLogQuery()

	log, err := s.getAlertLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve alerts",
		})
	}

	return ctx.JSON(http.StatusOK, AlertLogResponse{
		Codes:    log.Codes,
		Capacity: log.Capacity,
	})
}

func toNoticeResponses(notices []stock.Notice) []NoticeResponse {
	response := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		response[i] = NoticeResponse{
			Kind:    n.Kind.String(),
			Code:    n.Code,
			Message: n.String(),
		}
	}
	return response
}
