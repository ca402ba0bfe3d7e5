package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
)

// AdminHandler serves the back office: users, dashboard, pages and settings
type AdminHandler struct {
	admin    usecase.AdminUseCase
	content  usecase.ContentUseCase
	settings usecase.SettingUseCase
	logger   coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	admin usecase.AdminUseCase,
	content usecase.ContentUseCase,
	settings usecase.SettingUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		content:  content,
		settings: settings,
		logger:   logger,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// Overview handles GET /api/admin/overview
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.admin.Overview(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "overview", err)
		return
	}
	c.JSON(http.StatusOK, dto.OverviewResponse{
		Users:               overview.Users,
		PendingKYC:          overview.PendingKYC,
		PendingTransactions: overview.PendingTransactions,
	})
}

// CreateContent handles POST /api/admin/content
func (h *AdminHandler) CreateContent(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "create content", bindError(err))
		return
	}

	page, err := h.content.Create(c.Request.Context(), req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, "create content", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewContentResponse(page))
}

// UpdateContent handles PUT /api/admin/content/:id
func (h *AdminHandler) UpdateContent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "update content", err)
		return
	}

	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "update content", bindError(err))
		return
	}

	page, err := h.content.Update(c.Request.Context(), id, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, "update content", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContentResponse(page))
}

// ListContent handles GET /api/admin/content, drafts included
func (h *AdminHandler) ListContent(c *gin.Context) {
	pages, err := h.content.ListAll(c.Request.Context(), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list content", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContentList(pages))
}

// UpsertSetting handles POST /api/admin/settings
func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	var req dto.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "upsert setting", bindError(err))
		return
	}

	setting, err := h.settings.Upsert(c.Request.Context(), req.Key, req.Value, req.Type)
	if err != nil {
		respondError(c, h.logger, "upsert setting", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSettingResponse(setting))
}

// ListSettings handles GET /api/admin/settings
func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list settings", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSettingList(settings))
}

// PublishedContent handles GET /api/content/:slug
func (h *AdminHandler) PublishedContent(c *gin.Context) {
	page, err := h.content.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, "get content", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContentResponse(page))
}

// Setting handles GET /api/settings/:key
func (h *AdminHandler) Setting(c *gin.Context) {
	setting, err := h.settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, h.logger, "get setting", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSettingResponse(setting))
}
