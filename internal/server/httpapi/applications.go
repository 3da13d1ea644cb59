package httpapi

import (
	"net/http"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/labstack/echo/v4"
)

// Direct CRUD for clients that manage records without the sync protocol.
// Deletion is a tombstone write like everywhere else, so a later sync still
// propagates it.

func (s *Server) handleApplicationsList(c echo.Context) error {
	apps, err := s.apps.List(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, nonNilApplications(apps))
}

func (s *Server) handleApplicationsCreate(c echo.Context) error {
	var app models.Application
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if err := s.apps.Create(c.Request().Context(), userID(c), &app); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": app.ID})
}

func (s *Server) handleApplicationsUpdate(c echo.Context) error {
	var app models.Application
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	app.ID = c.Param("id")

	if err := s.apps.Update(c.Request().Context(), userID(c), &app); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (s *Server) handleApplicationsDelete(c echo.Context) error {
	if err := s.apps.Delete(c.Request().Context(), userID(c), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (s *Server) handleApplicationsRestore(c echo.Context) error {
	var app models.Application
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if err := s.apps.Restore(c.Request().Context(), userID(c), &app); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}
