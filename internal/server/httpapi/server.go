// Package httpapi is the REST surface: a thin mapping from HTTP verbs to
// the account, sync, résumé, and CRUD services.
package httpapi

import (
	"net/http"

	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/Anish2905/JobApplicantTracker/internal/server/services"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	users   *services.UserService
	sync    *services.SyncService
	apps    *services.ApplicationService
	resumes *services.ResumeService
}

// NewRouter builds the Echo instance with all routes and middleware wired.
// The limiter guards only the credential endpoints; everything else under
// /api requires a valid bearer token.
func NewRouter(
	secretKey []byte,
	logger logging.Logger,
	limiter *AuthRateLimiter,
	users *services.UserService,
	syncSvc *services.SyncService,
	apps *services.ApplicationService,
	resumes *services.ResumeService,
) *echo.Echo {
	s := &Server{users: users, sync: syncSvc, apps: apps, resumes: resumes}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(requestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	creds := e.Group("/api")
	if limiter != nil {
		creds.Use(limiter.Middleware())
	}
	creds.POST("/register", s.handleRegister)
	creds.POST("/login", s.handleLogin)

	api := e.Group("/api", RequireAuth(secretKey))
	api.GET("/sync", s.handleSyncPull)
	api.POST("/sync", s.handleSyncPush)
	api.GET("/resumes", s.handleResumesGet)
	api.POST("/resumes", s.handleResumesPost)
	api.GET("/applications", s.handleApplicationsList)
	api.POST("/applications", s.handleApplicationsCreate)
	api.PUT("/applications/:id", s.handleApplicationsUpdate)
	api.DELETE("/applications/:id", s.handleApplicationsDelete)
	api.POST("/applications/restore", s.handleApplicationsRestore)

	return e
}
