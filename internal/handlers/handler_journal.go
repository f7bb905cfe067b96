package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for posting journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers journal routes under a company group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:journal_id", h.getEntry)
		journals.PUT("/:journal_id", h.replaceEntry)
		journals.DELETE("/:journal_id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Post a journal entry
// @Description Validates and posts a balanced entry. Nothing is written when any line is rejected.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry body dto.JournalEntryRequest true "Entry with its lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to post entry"
// @Security BearerAuth
// @Router /companies/{company_id}/journals [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), c.Param("company_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID), slog.String("reference", entry.Reference))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journals
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   journal_id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("company_id"), c.Param("journal_id"), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first using token-based pagination.
// @Tags journals
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), c.Param("company_id"), params, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// replaceEntry godoc
// @Summary Replace a journal entry
// @Description Replaces the header and every line of an entry in one step. The reference is kept.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   journal_id path string true "Journal entry ID"
// @Param   entry body dto.JournalEntryRequest true "New entry content"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid entry"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id} [put]
func (h *journalHandler) replaceEntry(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	entry, err := h.journalService.ReplaceEntry(c.Request.Context(), c.Param("company_id"), c.Param("journal_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to replace journal entry")
		return
	}

	logger.Info("Journal entry replaced", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags journals
// @Param   company_id path string true "Company ID"
// @Param   journal_id path string true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	entryID := c.Param("journal_id")
	if err := h.journalService.DeleteEntry(c.Request.Context(), c.Param("company_id"), entryID, actor); err != nil {
		respondWithError(c, logger, err, "Failed to delete journal entry")
		return
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
