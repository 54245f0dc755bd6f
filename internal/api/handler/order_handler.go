package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/api/metrics"
	"github.com/greenloop/waste-mgmt/internal/api/middleware"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// OrderHandler handles pickup order creation and listing, plus the
// static scrap-item catalog. All protected routes run behind the
// RemoteAuth middleware, which injects the resolved identity.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// --- Request / Response types ---

type createOrderRequest struct {
	Items         map[string]float64 `json:"items"          validate:"required,min=1"`
	PickupDate    time.Time          `json:"pickup_date"    validate:"required"`
	PickupAddress string             `json:"pickup_address" validate:"required"`
}

type orderItemResponse struct {
	OrderID       string    `json:"order_id"`
	ItemType      string    `json:"item_type"`
	Quantity      float64   `json:"quantity"`
	PickupDate    time.Time `json:"pickup_date"`
	OrderDate     time.Time `json:"order_date"`
	PickupAddress string    `json:"pickup_address"`
}

type createOrderResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	UserID  string              `json:"user_id"`
	Items   []orderItemResponse `json:"items"`
}

type listOrdersResponse struct {
	Status string          `json:"status"`
	Orders []*domain.Order `json:"orders"`
}

type catalogResponse struct {
	Status string      `json:"status"`
	Data   catalogData `json:"data"`
}

type catalogData struct {
	ScrapItems []domain.ScrapCategory `json:"scrap_items"`
}

// ctxIdentity pulls the identity injected by the RemoteAuth middleware.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	sub, _ := c.Get(middleware.CtxSubject).(string)
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if sub == "" || userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity claims")
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	exp, _ := c.Get(middleware.CtxExpiry).(int64)
	return ports.Identity{Subject: sub, Role: role, UserID: userID, Exp: exp}, nil
}

// Catalog handles GET /items: the static reference list of accepted
// scrap items.
//
// @Summary      List accepted scrap item categories
// @Tags         orders
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /items [get]
func (h *OrderHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, catalogResponse{
		Status: "success",
		Data:   catalogData{ScrapItems: domain.ScrapCatalog},
	})
}

// Create handles POST /order.
//
// @Summary      Create a pickup order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Items, pickup date, and address"
// @Success      200   {object}  createOrderResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /order [post]
func (h *OrderHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.service.CreateOrder(c.Request().Context(), identity, ports.CreateOrderInput{
		Items:         req.Items,
		PickupDate:    req.PickupDate,
		PickupAddress: req.PickupAddress,
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Add(float64(len(orders)))

	items := make([]orderItemResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, orderItemResponse{
			OrderID:       o.ID,
			ItemType:      o.ItemType,
			Quantity:      o.Quantity,
			PickupDate:    o.PickupDate,
			OrderDate:     o.OrderDate,
			PickupAddress: o.PickupAddress,
		})
	}

	return c.JSON(http.StatusOK, createOrderResponse{
		Status:  "success",
		Message: "Order created successfully",
		UserID:  identity.UserID,
		Items:   items,
	})
}

// List handles GET /orders: the calling identity's orders.
//
// @Summary      List the caller's pickup orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Status: "success",
		Orders: orders,
	})
}
