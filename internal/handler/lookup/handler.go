package lookup

import (
	"github.com/gin-gonic/gin"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/pkg/httputil"
)

// Handler serves the static choice lists the frontend uses to populate
// selects without hardcoding values.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	lookups := r.Group("/lookups")
	{
		lookups.GET("/patient-document-types", h.PatientDocumentTypes)
		lookups.GET("/worker-document-types", h.WorkerDocumentTypes)
		lookups.GET("/appointment-statuses", h.AppointmentStatuses)
	}
}

func (h *Handler) PatientDocumentTypes(c *gin.Context) {
	httputil.RespondWithSuccess(c, model.PatientDocumentTypes)
}

func (h *Handler) WorkerDocumentTypes(c *gin.Context) {
	httputil.RespondWithSuccess(c, model.WorkerDocumentTypes)
}

func (h *Handler) AppointmentStatuses(c *gin.Context) {
	httputil.RespondWithSuccess(c, model.AppointmentStatuses)
}
