package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/dto"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type ReviewHandler struct {
	reviewRepo *repository.ReviewRepository
}

func NewReviewHandler(db repository.Store) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo: repository.NewReviewRepository(db),
	}
}

// CreateReview godoc
// @Summary Add a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body domain.Review true "Review"
// @Success 200 {object} dto.InsertResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var review domain.Review
	if err := c.Bind(&review); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, err := h.reviewRepo.Create(c.Request().Context(), &review)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.InsertResultFromMongo(res))
}

// GetReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} domain.Review
// @Router /reviews [get]
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.reviewRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
