package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/dto"
	"toolhub/internal/api/middleware"
	"toolhub/internal/api/services"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type UserHandler struct {
	userRepo    *repository.UserRepository
	userService *services.UserService
	authService *services.AuthService
}

func NewUserHandler(db repository.Store, jwtKey string) *UserHandler {
	userRepo := repository.NewUserRepository(db)

	return &UserHandler{
		userRepo:    userRepo,
		userService: services.NewUserService(userRepo),
		authService: services.NewAuthService(userRepo, jwtKey),
	}
}

// emailParam returns the :email path value decoded. Routing matches the raw
// path, so a client that escapes "@" as %40 would otherwise address a
// different user.
func emailParam(c echo.Context) (string, error) {
	return url.PathUnescape(c.Param("email"))
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by email
// @Description Responds with null when no user has the email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return ErrBadRequest(c, "invalid email")
	}

	user, err := h.userRepo.FindByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return emptyResult(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Create or update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param email path string true "User email"
// @Param request body domain.User true "Profile fields"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{email} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return ErrBadRequest(c, "invalid email")
	}

	var profile domain.User
	if err := c.Bind(&profile); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, err := h.userRepo.UpsertByEmail(c.Request().Context(), email, &profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.UpdateResultFromMongo(res))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "User ObjectID"
// @Success 200 {object} dto.DeleteResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	res, err := h.userRepo.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.DeleteResultFromMongo(res))
}

// GetAdmin godoc
// @Summary Check admin role
// @Description Looking up an email that was never stored is a server error
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.AdminStatus
// @Failure 500 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/{email} [get]
func (h *UserHandler) GetAdmin(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return ErrBadRequest(c, "invalid email")
	}

	admin, err := h.userService.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.AdminStatus{Admin: admin})
}

// MakeAdmin godoc
// @Summary Grant the admin role
// @Tags users
// @Produce json
// @Security Bearer
// @Param email path string true "User email"
// @Success 200 {object} dto.UpdateResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /user/admin/{email} [put]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return ErrBadRequest(c, "invalid email")
	}

	res, err := h.userService.MakeAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if actor, err := middleware.GetEmailFromContext(c.Request().Context()); err == nil {
		c.Logger().Infof("admin role granted to %s by %s", email, actor)
	}
	return c.JSON(http.StatusOK, dto.UpdateResultFromMongo(res))
}

// SignIn godoc
// @Summary Upsert a user and issue an access token
// @Description The token is valid for one hour
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body domain.User true "Profile fields"
// @Success 200 {object} dto.UserTokenResponse
// @Failure 400 {object} map[string]string
// @Router /user/{email} [put]
func (h *UserHandler) SignIn(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return ErrBadRequest(c, "invalid email")
	}

	var profile domain.User
	if err := c.Bind(&profile); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	res, token, err := h.authService.SignIn(c.Request().Context(), email, &profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.UserTokenResponse{
		Result: dto.UpdateResultFromMongo(res),
		Token:  token,
	})
}
