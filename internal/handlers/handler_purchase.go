package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests for purchase transactions.
type purchaseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newPurchaseHandler(ls portssvc.LedgerSvcFacade) *purchaseHandler {
	return &purchaseHandler{ledgerService: ls}
}

// registerPurchaseRoutes registers all purchase-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newPurchaseHandler(ledgerService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.recordPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
	}
}

// recordPurchase godoc
// @Summary Record a purchase transaction
// @Description Atomically records the bill, increments stock for each line and posts a VAT input entry when VAT is enabled.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase with line items"
// @Success 201 {object} dto.PurchaseTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or total mismatch"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for record purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.RecordPurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseTransactionResponse(txn))
}

// listPurchases godoc
// @Summary List purchase transactions
// @Description Returns purchases newest first. Pass the returned nextToken to fetch the following page.
// @Tags purchases
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListPurchaseTransactions(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getPurchase godoc
// @Summary Get a purchase transaction by ID
// @Tags purchases
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.PurchaseTransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	txn, err := h.ledgerService.GetPurchaseTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseTransactionResponse(txn))
}
