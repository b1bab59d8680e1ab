package patient

import (
	"github.com/gin-gonic/gin"

	"github.com/bellitaspa/agenda-api/internal/handler"
	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	"github.com/bellitaspa/agenda-api/pkg/httputil"
	"github.com/bellitaspa/agenda-api/pkg/validator"
)

type Handler struct {
	catalog   *catalog.Service
	records   repository.RecordRepository
	validator *validator.Validator
}

func NewHandler(catalogSvc *catalog.Service, records repository.RecordRepository, v *validator.Validator) *Handler {
	return &Handler{
		catalog:   catalogSvc,
		records:   records,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)

		patients.GET("/:id/record", h.GetClinicalRecord)
		patients.PUT("/:id/record", h.UpdateClinicalRecord)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	patient, err := h.catalog.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, patient)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.catalog.ListPatients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	patient, err := h.catalog.GetPatient(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.UpdatePatientRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	patient, err := h.catalog.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, patient)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeletePatient(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}

func (h *Handler) GetClinicalRecord(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	record, err := h.records.GetByPatient(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, record)
}

func (h *Handler) UpdateClinicalRecord(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.UpdateClinicalRecordRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	record, err := h.records.GetByPatient(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if req.Observations != nil {
		record.Observations = req.Observations
	}
	if req.Recommendations != nil {
		record.Recommendations = req.Recommendations
	}

	if err := h.records.Update(c.Request.Context(), record); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, record)
}
