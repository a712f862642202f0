package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/usecase"
)

type UserController interface {
	ListUsers(c echo.Context) error
	UpdateStatus(c echo.Context) error
}

type userController struct {
	userUsecase usecase.UserUsecase
}

func NewUserController(userUsecase usecase.UserUsecase) UserController {
	return &userController{userUsecase: userUsecase}
}

func (uc *userController) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := uc.userUsecase.ListUsers(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=online away offline"`
}

func (uc *userController) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := uc.userUsecase.UpdateStatus(ctx, c.Param("id"), models.UserStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
