package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
	apperrors "github.com/yeonjae/fortune-calendar/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	calendarSvc calendar.Service
	profileSvc  profile.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(calendarSvc calendar.Service, profileSvc profile.Service, logger *slog.Logger) *Handler {
	return &Handler{
		calendarSvc: calendarSvc,
		profileSvc:  profileSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// CreateProfile stores an externally extracted natal profile.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req profile.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	stored, err := h.profileSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, translateError(err, "profile_create_failed"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetProfile returns a stored profile by id.
func (h *Handler) GetProfile(c *gin.Context) {
	stored, err := h.profileSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, translateError(err, "profile_get_failed"))
		return
	}
	c.JSON(http.StatusOK, stored)
}

// Yearly returns a year's significant days grouped into grade buckets.
func (h *Handler) Yearly(c *gin.Context) {
	year, httpErr := pathYear(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	natal, httpErr := h.resolveProfile(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	opts := calendar.Options{
		MinGrade: queryInt(c, "minGrade", 0),
		Limit:    queryInt(c, "limit", 0),
	}

	result, err := h.calendarSvc.Yearly(c.Request.Context(), year, natal, opts)
	if err != nil {
		abortWithError(c, translateError(err, "calendar_failed"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Monthly returns one month's significant days, ascending by date.
func (h *Handler) Monthly(c *gin.Context) {
	year, httpErr := pathYear(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "month must be a number", err))
		return
	}
	natal, httpErr := h.resolveProfile(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	dates, svcErr := h.calendarSvc.Monthly(c.Request.Context(), year, time.Month(month), natal)
	if svcErr != nil {
		abortWithError(c, translateError(svcErr, "calendar_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// BestForCategory returns the top dates for one category, descending by
// score.
func (h *Handler) BestForCategory(c *gin.Context) {
	year, httpErr := pathYear(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	natal, httpErr := h.resolveProfile(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	category := calendar.EventCategory(c.Query("category"))

	dates, err := h.calendarSvc.BestForCategory(c.Request.Context(), year, category, natal, queryInt(c, "limit", 0))
	if err != nil {
		abortWithError(c, translateError(err, "calendar_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) resolveProfile(c *gin.Context) (calendar.NatalProfile, *HTTPError) {
	id := c.Query("profileId")
	if id == "" {
		return calendar.NatalProfile{}, NewHTTPError(http.StatusBadRequest, "invalid_request", "profileId query parameter is required", nil)
	}
	stored, err := h.profileSvc.Get(c.Request.Context(), id)
	if err != nil {
		return calendar.NatalProfile{}, translateError(err, "profile_get_failed")
	}
	return stored.Natal, nil
}

func pathYear(c *gin.Context) (int, *HTTPError) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid_request", "year must be a number", err)
	}
	return year, nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func translateError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "profile_not_found"):
		status = http.StatusNotFound
		code = "profile_not_found"
	case apperrors.IsCode(err, "storage_error"):
		status = http.StatusBadGateway
	case apperrors.IsCode(err, "cancelled"):
		status = http.StatusRequestTimeout
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
