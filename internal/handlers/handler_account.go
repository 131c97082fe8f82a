package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/cash", h.listCashAccounts)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists the accounts of an organization ordered by code, optionally filtered by type
// @Tags accounts
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param type query string false "Account type" Enums(asset, liability, equity, income, expense)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid account type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /organizations/{org_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var accountType *domain.AccountType
	if params.AccountType != "" {
		accountType = &params.AccountType
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), organizationID, userID, accountType)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listCashAccounts godoc
// @Summary List cash and bank accounts
// @Description Lists the asset accounts that can receive or pay money
// @Tags accounts
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to list cash accounts"
// @Security BearerAuth
// @Router /organizations/{org_id}/accounts/cash [get]
func (h *accountHandler) listCashAccounts(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListCashAccounts(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list cash accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
