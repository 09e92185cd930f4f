package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/dto"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type WishHandler struct {
	wishRepo *repository.WishRepository
}

func NewWishHandler(db repository.Store) *WishHandler {
	return &WishHandler{
		wishRepo: repository.NewWishRepository(db),
	}
}

// CreateWish godoc
// @Summary Add a wishlist entry
// @Tags wishlist
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body domain.Wish true "Wish"
// @Success 200 {object} dto.InsertResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /wish [post]
func (h *WishHandler) CreateWish(c echo.Context) error {
	var wish domain.Wish
	if err := c.Bind(&wish); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, err := h.wishRepo.Create(c.Request().Context(), &wish)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.InsertResultFromMongo(res))
}

// GetWishes godoc
// @Summary List wishlist entries
// @Tags wishlist
// @Produce json
// @Success 200 {array} domain.Wish
// @Router /wishes [get]
func (h *WishHandler) GetWishes(c echo.Context) error {
	wishes, err := h.wishRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishes)
}
