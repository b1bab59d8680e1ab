package appointment

import (
	"github.com/gin-gonic/gin"

	"github.com/bellitaspa/agenda-api/internal/handler"
	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/service/appointment"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
	"github.com/bellitaspa/agenda-api/pkg/httputil"
	"github.com/bellitaspa/agenda-api/pkg/validator"
)

type Handler struct {
	service   *appointment.Service
	validator *validator.Validator
}

func NewHandler(service *appointment.Service, v *validator.Validator) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.PUT("/:id/status", h.ChangeStatus)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	appt, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, appt)
}

// ListAppointments supports exact-date and status filtering via the
// `date` (YYYY-MM-DD) and `status` query parameters. An absent or "all"
// status matches every appointment.
func (h *Handler) ListAppointments(c *gin.Context) {
	filters := model.AppointmentFilters{
		Status: c.DefaultQuery("status", model.StatusFilterAll),
	}

	if raw := c.Query("date"); raw != "" {
		date, err := model.ParseDate(raw)
		if err != nil {
			verr := apperrors.NewValidation()
			verr.Add("date", "must be a valid date in YYYY-MM-DD format")
			httputil.RespondWithError(c, verr)
			return
		}
		filters.Date = &date
	}

	appointments, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	appt, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	appt, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req changeStatusRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	status := model.AppointmentStatus(req.Status)
	if !status.Valid() {
		verr := apperrors.NewValidation()
		verr.Add("status", "must be one of PEND, CONF, REAL, CANC")
		httputil.RespondWithError(c, verr)
		return
	}

	appt, err := h.service.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
