package handlers

import (
	"net/http"

	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// vatLedgerHandler handles HTTP requests for the VAT ledger.
type vatLedgerHandler struct {
	vatLedgerService portssvc.VatLedgerSvc
}

func newVatLedgerHandler(vs portssvc.VatLedgerSvc) *vatLedgerHandler {
	return &vatLedgerHandler{vatLedgerService: vs}
}

// registerVatLedgerRoutes registers all VAT ledger routes.
func registerVatLedgerRoutes(rg *gin.RouterGroup, vatLedgerService portssvc.VatLedgerSvc) {
	h := newVatLedgerHandler(vatLedgerService)

	vat := rg.Group("/vat-ledger")
	{
		vat.GET("", h.listEntries)
		vat.GET("/summary", h.getSummary)
	}
}

// listEntries godoc
// @Summary List VAT ledger entries
// @Description Returns VAT entries newest first, optionally filtered by entry date.
// @Tags vat-ledger
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.VatLedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /vat-ledger [get]
func (h *vatLedgerHandler) listEntries(c *gin.Context) {
	var query dto.VatLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.vatLedgerService.ListVatEntries(c.Request.Context(), query.FromDate, query.ToDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVatLedgerEntryResponses(entries))
}

// getSummary godoc
// @Summary Get the VAT summary
// @Description Returns VAT collected on sales, VAT paid on purchases and the net payable amount for the period.
// @Tags vat-ledger
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.VatSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /vat-ledger/summary [get]
func (h *vatLedgerHandler) getSummary(c *gin.Context) {
	var query dto.VatLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.vatLedgerService.GetVatSummary(c.Request.Context(), query.FromDate, query.ToDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVatSummaryResponse(summary))
}
