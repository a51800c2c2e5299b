package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesHandler handles HTTP requests for sales transactions.
type salesHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newSalesHandler(ls portssvc.LedgerSvcFacade) *salesHandler {
	return &salesHandler{ledgerService: ls}
}

// RegisterSalesRoutes registers all sales-related routes.
func RegisterSalesRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newSalesHandler(ledgerService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
	}
}

// recordSale godoc
// @Summary Record a sales transaction
// @Description Atomically records the invoice, decrements stock for each line and posts a VAT output entry when VAT is enabled.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSalesRequest true "Sale with line items"
// @Success 201 {object} dto.SalesTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or total mismatch"
// @Failure 409 {object} ErrorResponse "Duplicate invoice number or insufficient stock"
// @Security BearerAuth
// @Router /sales [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for record sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.RecordSale(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalesTransactionResponse(txn))
}

// listSales godoc
// @Summary List sales transactions
// @Description Returns sales newest first. Pass the returned nextToken to fetch the following page.
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Security BearerAuth
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListSalesTransactions(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sales transaction by ID
// @Tags sales
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.SalesTransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *salesHandler) getSale(c *gin.Context) {
	txn, err := h.ledgerService.GetSalesTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesTransactionResponse(txn))
}
