package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/dto"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type OrderHandler struct {
	orderRepo *repository.OrderRepository
}

func NewOrderHandler(db repository.Store) *OrderHandler {
	return &OrderHandler{
		orderRepo: repository.NewOrderRepository(db),
	}
}

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body domain.Order true "Order"
// @Success 200 {object} dto.InsertResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var order domain.Order
	if err := c.Bind(&order); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, err := h.orderRepo.Create(c.Request().Context(), &order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.InsertResultFromMongo(res))
}

// GetOrders godoc
// @Summary List orders placed by a user
// @Tags orders
// @Produce json
// @Param userEmail query string false "Owner email"
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orderRepo.FindByUserEmail(c.Request().Context(), c.QueryParam("userEmail"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// GetAllOrders godoc
// @Summary List every order
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /allOrders [get]
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.orderRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
