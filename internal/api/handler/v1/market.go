package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classquest/classquest-api/internal/api/handler/v1/request"
	"github.com/classquest/classquest-api/internal/api/handler/v1/response"
	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/service"
)

type MarketService interface {
	ListItems(ctx context.Context) ([]domain.MarketItem, error)
	BuyItem(ctx context.Context, studentID string, itemID uint) (domain.Purchase, error)
	ListPurchases(ctx context.Context, studentID string) ([]domain.Purchase, error)
}

type MarketHandler struct {
	svc MarketService
}

func NewMarketHandler(svc MarketService) *MarketHandler {
	return &MarketHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List market items
// @Tags         market
// @Produce      json
// @Success      200  {array}   domain.MarketItem
// @Failure      500  {object}  response.Err
// @Router       /market [get]
func (h *MarketHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleBuyItem godoc
// @Summary      Buy a market item
// @Description  Debits the item price from the student's points and appends a purchase record.
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body      request.BuyItemRequest  true  "request body"
// @Success      200      {object}  response.Success
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /market/buy [post]
func (h *MarketHandler) HandleBuyItem(ctx *gin.Context) {
	var req request.BuyItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.BuyItem(ctx.Request.Context(), *req.StudentID, req.ItemID); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("student", "id", *req.StudentID))
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "id", req.ItemID))
		case errors.Is(err, service.ErrInsufficientPoints):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientPoints))
		default:
			err = fmt.Errorf("v1.HandleBuyItem -> h.svc.BuyItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.Success{Success: true})
}

// HandleListPurchases godoc
// @Summary      Purchase history of a student
// @Tags         market
// @Produce      json
// @Param        studentID  path      string  true  "Student ID"
// @Success      200        {array}   response.PurchaseHistoryEntry
// @Failure      500        {object}  response.Err
// @Router       /purchases/{studentID} [get]
func (h *MarketHandler) HandleListPurchases(ctx *gin.Context) {
	purchases, err := h.svc.ListPurchases(ctx.Request.Context(), ctx.Param("studentID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListPurchases -> h.svc.ListPurchases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	history := make([]response.PurchaseHistoryEntry, len(purchases))
	for i, p := range purchases {
		history[i] = response.PurchaseHistoryEntry{
			ItemName:    p.ItemName,
			PurchasedAt: p.PurchasedAt,
		}
	}

	ctx.JSON(http.StatusOK, history)
}
