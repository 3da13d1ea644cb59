package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Pin      string `json:"pin"`
}

type tokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	token, id, err := s.users.Register(c.Request().Context(), req.Username, req.Pin)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{Token: token, UserID: id})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	token, id, err := s.users.Login(c.Request().Context(), req.Username, req.Pin)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token, UserID: id})
}
