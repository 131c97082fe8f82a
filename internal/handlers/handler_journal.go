package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers the ledger view, manual posting and capital injection routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journal-entries")
	{
		journals.GET("", h.listJournalEntries)
		journals.POST("", h.postJournalEntry)
	}
	rg.POST("/capital-injections", h.injectCapital)
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates and records a balanced double-entry journal entry. Reposting the same entry under the same entryID returns the stored entry.
// @Tags journals
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 409 {object} map[string]string "Entry ID already used for a different posting"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// injectCapital godoc
// @Summary Inject owner capital
// @Description Debits a cash or bank account and credits the capital account
// @Tags journals
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param capital body dto.CapitalInjectionRequest true "Capital injection"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or non-cash account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (admin role required)"
// @Failure 500 {object} map[string]string "Failed to inject capital"
// @Security BearerAuth
// @Router /organizations/{org_id}/capital-injections [post]
func (h *journalHandler) injectCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CapitalInjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InjectCapital", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.InjectCapital(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to inject capital")
		return
	}

	logger.Info("Capital injected", slog.String("entry_id", entry.EntryID), slog.String("reference", entry.Reference))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists journal entries newest first with token-based pagination
// @Tags journals
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param nextToken query string false "Token of the next page"
// @Param filter query string false "Account type filter" Enums(ALL, INCOME, EXPENSE, EQUITY) default(ALL)
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListJournalEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	response, err := h.journalService.ListJournalEntries(c.Request.Context(), organizationID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, response)
}
