package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/dto"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type ToolHandler struct {
	toolRepo *repository.ToolRepository
}

func NewToolHandler(db repository.Store) *ToolHandler {
	return &ToolHandler{
		toolRepo: repository.NewToolRepository(db),
	}
}

// GetTools godoc
// @Summary List tools
// @Tags tools
// @Produce json
// @Success 200 {array} domain.Tool
// @Router /tools [get]
func (h *ToolHandler) GetTools(c echo.Context) error {
	tools, err := h.toolRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tools)
}

// GetTool godoc
// @Summary Get tool by id
// @Description Responds with null when no tool has the id
// @Tags tools
// @Produce json
// @Param id path string true "Tool ObjectID"
// @Success 200 {object} domain.Tool
// @Router /tools/{id} [get]
func (h *ToolHandler) GetTool(c echo.Context) error {
	tool, err := h.toolRepo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return emptyResult(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, tool)
}

// CreateTool godoc
// @Summary Add a tool
// @Tags tools
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body domain.Tool true "Tool"
// @Success 200 {object} dto.InsertResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tools [post]
func (h *ToolHandler) CreateTool(c echo.Context) error {
	var tool domain.Tool
	if err := c.Bind(&tool); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, err := h.toolRepo.Create(c.Request().Context(), &tool)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.InsertResultFromMongo(res))
}

// DeleteTool godoc
// @Summary Delete a tool
// @Tags tools
// @Produce json
// @Security Bearer
// @Param id path string true "Tool ObjectID"
// @Success 200 {object} dto.DeleteResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tools/{id} [delete]
func (h *ToolHandler) DeleteTool(c echo.Context) error {
	res, err := h.toolRepo.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.DeleteResultFromMongo(res))
}
