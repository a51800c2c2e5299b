package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests related to catalog items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers all item-related routes.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
		items.POST("/:id/adjust-stock", h.adjustStock)
	}
}

// createItem godoc
// @Summary Create a catalog item
// @Description Creates a new product with its price points and opening stock
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create item request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List catalog items
// @Tags items
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ItemResponse
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.itemService.ListItems(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// getItem godoc
// @Summary Get a catalog item by ID
// @Tags items
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update a catalog item
// @Description Updates item details. Stock cannot be changed through this endpoint.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update item request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a catalog item
// @Description Deletes an item. Items referenced by recorded sales or purchases cannot be deleted.
// @Tags items
// @Param   id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item referenced by recorded transactions"
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// adjustStock godoc
// @Summary Adjust an item's stock level
// @Description Applies a signed manual stock correction outside any sale or purchase
// @Tags items
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   adjustment body dto.AdjustStockRequest true "Signed delta and reason"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id}/adjust-stock [post]
func (h *itemHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for adjust stock request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.AdjustStock(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
