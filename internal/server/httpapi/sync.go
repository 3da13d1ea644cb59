package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/Anish2905/JobApplicantTracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

type syncRequest struct {
	Changes  json.RawMessage `json:"changes"`
	LastSync string          `json:"lastSync"`
}

type syncResponse struct {
	Applications []*models.Application `json:"applications"`
	Outcomes     []services.Outcome    `json:"outcomes,omitempty"`
	ServerTime   models.Timestamp      `json:"serverTime"`
}

func (s *Server) handleSyncPull(c echo.Context) error {
	since, err := parseSince(c.QueryParam("since"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid since timestamp"})
	}

	apps, err := s.sync.Pull(c.Request().Context(), userID(c), since)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, syncResponse{
		Applications: nonNilApplications(apps),
		ServerTime:   models.TimestampNow(),
	})
}

func (s *Server) handleSyncPush(c echo.Context) error {
	var req syncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	since, err := parseSince(req.LastSync)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid lastSync timestamp"})
	}

	changes, preOutcomes, err := decodeChanges(req.Changes)
	if err != nil {
		// not a sequence of record-shaped objects: the whole call fails
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid changes payload"})
	}

	apps, outcomes, serverTime, err := s.sync.Push(c.Request().Context(), userID(c), changes, since)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, syncResponse{
		Applications: nonNilApplications(apps),
		Outcomes:     append(preOutcomes, outcomes...),
		ServerTime:   serverTime,
	})
}

// decodeChanges splits the batch into per-record decodes so one bad record
// rejects that record only, while a batch that is not a list at all is a
// request-scoped failure.
func decodeChanges(raw json.RawMessage) ([]*models.Application, []services.Outcome, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, err
	}

	changes := make([]*models.Application, 0, len(items))
	var rejected []services.Outcome
	for _, item := range items {
		app := &models.Application{}
		if err := json.Unmarshal(item, app); err != nil {
			rejected = append(rejected, services.Outcome{
				Result: services.OutcomeRejected,
				Reason: "malformed record",
			})
			continue
		}
		changes = append(changes, app)
	}
	return changes, rejected, nil
}

func parseSince(s string) (models.Timestamp, error) {
	if s == "" {
		return models.Timestamp{}, nil
	}
	return models.ParseTimestamp(s)
}

func nonNilApplications(apps []*models.Application) []*models.Application {
	if apps == nil {
		return []*models.Application{}
	}
	return apps
}
