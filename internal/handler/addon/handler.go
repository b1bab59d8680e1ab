package addon

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
	addons := r.Group("/addons")
	{
		addons.POST("", h.CreateAddon)
		addons.GET("", h.ListAddons)
		addons.GET("/:id", h.GetAddon)
		addons.PUT("/:id", h.UpdateAddon)
		addons.DELETE("/:id", h.DeleteAddon)
	}
}

func (h *Handler) CreateAddon(c *gin.Context) {
	var req model.CreateAddonRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	addon, err := h.catalog.CreateAddon(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, addon)
}

func (h *Handler) ListAddons(c *gin.Context) {
	addons, err := h.catalog.ListAddons(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, addons)
}

func (h *Handler) GetAddon(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	addon, err := h.catalog.GetAddon(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, addon)
}

func (h *Handler) UpdateAddon(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	var req model.UpdateAddonRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	addon, err := h.catalog.UpdateAddon(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, addon)
}

func (h *Handler) DeleteAddon(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteAddon(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
