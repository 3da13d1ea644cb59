package httpapi

import (
	"net/http"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/labstack/echo/v4"
)

type resumeActionRequest struct {
	Action string        `json:"action"`
	Resume models.Resume `json:"resume"`
}

// handleResumesGet serves both modes: ?id= fetches one record with the
// payload, no id lists the owner's records metadata-only.
func (s *Server) handleResumesGet(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("id"); id != "" {
		resume, err := s.resumes.FetchOne(ctx, userID(c), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"resume": resume})
	}

	list, err := s.resumes.FetchList(ctx, userID(c))
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []*models.Resume{}
	}
	return c.JSON(http.StatusOK, echo.Map{"resumes": list})
}

func (s *Server) handleResumesPost(c echo.Context) error {
	var req resumeActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	ctx := c.Request().Context()

	switch req.Action {
	case "upload":
		if err := s.resumes.Upload(ctx, userID(c), &req.Resume); err != nil {
			return writeError(c, err)
		}
	case "delete":
		if err := s.resumes.Delete(ctx, userID(c), req.Resume.ID); err != nil {
			return writeError(c, err)
		}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid action"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
