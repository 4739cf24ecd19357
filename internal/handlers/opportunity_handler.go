package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shadowme_backend/internal/middleware"
	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services"
	"shadowme_backend/internal/services/dto"
)

type OpportunityHandler struct {
	*BaseHandler
	opportunityService *services.OpportunityService
	applicationService *services.ApplicationService
}

func NewOpportunityHandler(
	base *BaseHandler,
	opportunityService *services.OpportunityService,
	applicationService *services.ApplicationService,
) *OpportunityHandler {
	return &OpportunityHandler{
		BaseHandler:        base,
		opportunityService: opportunityService,
		applicationService: applicationService,
	}
}

func (h *OpportunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Browsing the catalog is open, no login needed.
	public := r.Group("/opportunities")
	{
		public.GET("", h.List)
		public.GET("/:opportunityId", h.Get)
	}

	business := r.Group("/opportunities")
	business.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBusiness))
	{
		business.POST("", h.Create)
		business.GET("/my", h.ListMine)
		business.PUT("/:opportunityId", h.Update)
		business.GET("/:opportunityId/applications", h.ListApplications)
	}
}

func (h *OpportunityHandler) List(c *gin.Context) {
	var filter repositories.OpportunityFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	opportunities, err := h.opportunityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	opportunityID, ok := h.RequireParam(c, "opportunityId")
	if !ok {
		return
	}

	opportunity, err := h.opportunityService.Get(c.Request.Context(), opportunityID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunity)
}

func (h *OpportunityHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opportunity)
}

func (h *OpportunityHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	opportunityID, ok := h.RequireParam(c, "opportunityId")
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.Update(c.Request.Context(), userID, opportunityID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunity)
}

func (h *OpportunityHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	opportunities, err := h.opportunityService.ListForBusiness(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

func (h *OpportunityHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	opportunityID, ok := h.RequireParam(c, "opportunityId")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForOpportunity(c.Request.Context(), userID, opportunityID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
