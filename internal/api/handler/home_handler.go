package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the unauthenticated welcome route.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Welcome handles GET /.
//
// @Summary      Welcome message
// @Tags         home
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *HomeHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Bienvenue sur l'API BackFrontDevops",
	})
}
