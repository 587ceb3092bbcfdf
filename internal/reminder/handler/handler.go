package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/713zhao/aireminder/internal/reminder"
	"github.com/713zhao/aireminder/internal/reminder/service"
	"github.com/713zhao/aireminder/pkg/metrics"
)

// Handler exposes the reminder API over HTTP. The user identity is taken
// from the auth middleware ("userId" in the gin context).
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the reminder routes under /api/reminders.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/reminders")
	g.GET("", h.List)
	g.GET("/date/:date", h.ForDate)
	g.GET("/today", h.Today)
	g.GET("/upcoming", h.Upcoming)
	g.GET("/overdue", h.Overdue)
	g.GET("/search", h.Search)
	g.GET("/shared", h.Shared)
	g.GET("/summary", h.Summary)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/complete", h.Complete)
}

func userID(c *gin.Context) string { return c.GetString("userId") }

// writeError maps service taxonomy errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) respondList(c *gin.Context, list []reminder.Reminder) {
	metrics.QueriesServed.WithLabelValues(c.FullPath()).Inc()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(list),
		"reminders": reminder.FormatViews(list, time.Now().UTC()),
	})
}

func (h *Handler) List(c *gin.Context) {
	status := c.DefaultQuery("status", reminder.StatusAll)
	list, err := h.svc.GetAll(c.Request.Context(), userID(c), status)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) ForDate(c *gin.Context) {
	includeCompleted := c.Query("includeCompleted") == "true"
	list, err := h.svc.GetForDate(c.Request.Context(), userID(c), c.Param("date"), includeCompleted)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Today(c *gin.Context) {
	includeCompleted := c.Query("includeCompleted") == "true"
	list, err := h.svc.GetToday(c.Request.Context(), userID(c), includeCompleted)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Upcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	sortBy := c.DefaultQuery("sortBy", service.SortByPriority)
	includeCompleted := c.Query("includeCompleted") == "true"
	list, err := h.svc.GetUpcoming(c.Request.Context(), userID(c), days, sortBy, includeCompleted)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Overdue(c *gin.Context) {
	list, err := h.svc.GetOverdue(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Search(c *gin.Context) {
	status := c.DefaultQuery("status", reminder.StatusAll)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	list, err := h.svc.Search(c.Request.Context(), userID(c), c.Query("q"), status, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Shared(c *gin.Context) {
	list, err := h.svc.GetShared(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondList(c, list)
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.svc.Summarize(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.QueriesServed.WithLabelValues(c.FullPath()).Inc()
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder.FormatView(r, time.Now().UTC()))
}

type createRequest struct {
	Title               string   `json:"title"`
	Notes               string   `json:"notes"`
	DueAt               string   `json:"dueAt"`
	Recurrence          string   `json:"recurrence"`
	RecurrenceEnd       string   `json:"recurrenceEnd"`
	WeeklyDays          []int    `json:"weeklyDays"`
	RemindBeforeMinutes int      `json:"remindBeforeMinutes"`
	SharedWith          []string `json:"sharedWith"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := service.CreateInput{
		Title:               req.Title,
		Notes:               req.Notes,
		Recurrence:          req.Recurrence,
		WeeklyDays:          req.WeeklyDays,
		RemindBeforeMinutes: req.RemindBeforeMinutes,
		SharedWith:          req.SharedWith,
	}
	if req.DueAt != "" {
		t, err := reminder.ParseInstant(req.DueAt)
		if err != nil {
			writeError(c, service.ErrInvalidDate)
			return
		}
		in.DueAt = &t
	}
	if req.RecurrenceEnd != "" {
		t, err := reminder.ParseInstant(req.RecurrenceEnd)
		if err != nil {
			writeError(c, service.ErrInvalidDate)
			return
		}
		in.RecurrenceEnd = &t
	}
	r, err := h.svc.Create(c.Request.Context(), userID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.MutationsApplied.WithLabelValues("create").Inc()
	c.JSON(http.StatusCreated, reminder.FormatView(r, time.Now().UTC()))
}

// updateRequest distinguishes omitted fields (nil pointer) from explicitly
// cleared ones: an empty-string dueAt/recurrenceEnd clears the instant.
// JSON null decodes into a nil pointer and so reads as omitted.
type updateRequest struct {
	Title               *string   `json:"title"`
	Notes               *string   `json:"notes"`
	DueAt               *string   `json:"dueAt"`
	Recurrence          *string   `json:"recurrence"`
	RecurrenceEnd       *string   `json:"recurrenceEnd"`
	WeeklyDays          *[]int    `json:"weeklyDays"`
	SharedWith          *[]string `json:"sharedWith"`
	RemindBeforeMinutes *int      `json:"remindBeforeMinutes"`
	IsDisabled          *bool     `json:"isDisabled"`
}

func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := service.UpdateInput{
		Title:               req.Title,
		Notes:               req.Notes,
		Recurrence:          req.Recurrence,
		WeeklyDays:          req.WeeklyDays,
		SharedWith:          req.SharedWith,
		RemindBeforeMinutes: req.RemindBeforeMinutes,
		IsDisabled:          req.IsDisabled,
	}
	if req.DueAt != nil {
		if *req.DueAt == "" {
			in.ClearDueAt = true
		} else {
			t, err := reminder.ParseInstant(*req.DueAt)
			if err != nil {
				writeError(c, service.ErrInvalidDate)
				return
			}
			in.DueAt = &t
		}
	}
	if req.RecurrenceEnd != nil {
		if *req.RecurrenceEnd == "" {
			in.ClearRecurrenceEnd = true
		} else {
			t, err := reminder.ParseInstant(*req.RecurrenceEnd)
			if err != nil {
				writeError(c, service.ErrInvalidDate)
				return
			}
			in.RecurrenceEnd = &t
		}
	}
	r, err := h.svc.Update(c.Request.Context(), c.Param("id"), userID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.MutationsApplied.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, reminder.FormatView(r, time.Now().UTC()))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeError(c, err)
		return
	}
	metrics.MutationsApplied.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "reminderId": c.Param("id")})
}

func (h *Handler) Complete(c *gin.Context) {
	r, err := h.svc.Complete(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.MutationsApplied.WithLabelValues("complete").Inc()
	c.JSON(http.StatusOK, reminder.FormatView(r, time.Now().UTC()))
}
