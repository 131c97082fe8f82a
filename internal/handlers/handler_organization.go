package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

// newOrganizationHandler creates a new organizationHandler.
func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
	}
}

// registerOrganizationRoutes registers organization routes and nests every tenant-scoped
// resource under /organizations/:org_id.
func registerOrganizationRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOrganizationHandler(services.Organization)

	rg.GET("/organizations", h.listUserOrganizations)

	organization := rg.Group("/organizations/:org_id")
	{
		organization.GET("", h.getOrganization)

		registerAccountRoutes(organization, services.Account)
		registerJournalRoutes(organization, services.Journal)
		registerInvoiceRoutes(organization, services.Invoice)
		registerReportingRoutes(organization, services.Reporting)
	}
}

// listUserOrganizations godoc
// @Summary List organizations for the current user
// @Description Lists the organizations the authenticated user is a member of
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list organizations"
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listUserOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	organizations, err := h.organizationService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list organizations")
		return
	}

	logger.Info("Organizations listed successfully", slog.Int("count", len(organizations)))
	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(organizations))
}

// getOrganization godoc
// @Summary Get an organization
// @Description Retrieves an organization the authenticated user is a member of
// @Tags organizations
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (not a member)"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve organization"
// @Security BearerAuth
// @Router /organizations/{org_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	organization, err := h.organizationService.FindOrganizationByID(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(organization))
}
