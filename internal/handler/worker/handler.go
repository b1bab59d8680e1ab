package worker

import (
	"github.com/gin-gonic/gin"

	"github.com/bellitaspa/agenda-api/internal/handler"
	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	"github.com/bellitaspa/agenda-api/pkg/httputil"
	"github.com/bellitaspa/agenda-api/pkg/validator"
)

type Handler struct {
	catalog   *catalog.Service
	validator *validator.Validator
}

func NewHandler(catalogSvc *catalog.Service, v *validator.Validator) *Handler {
	return &Handler{catalog: catalogSvc, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	workers := r.Group("/workers")
	{
		workers.POST("", h.CreateWorker)
		workers.GET("", h.ListWorkers)
		workers.GET("/:id", h.GetWorker)
		workers.PUT("/:id", h.UpdateWorker)
		workers.DELETE("/:id", h.DeleteWorker)
	}
}

func (h *Handler) CreateWorker(c *gin.Context) {
	var req model.CreateWorkerRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	worker, err := h.catalog.CreateWorker(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, worker)
}

func (h *Handler) ListWorkers(c *gin.Context) {
	workers, err := h.catalog.ListWorkers(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, workers)
}

func (h *Handler) GetWorker(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	worker, err := h.catalog.GetWorker(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, worker)
}

func (h *Handler) UpdateWorker(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.UpdateWorkerRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	worker, err := h.catalog.UpdateWorker(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, worker)
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteWorker(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
