package handler

import (
	"time"

	"github.com/storefront/orders-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		UserID:   req.UserID,
		Client:   req.Client,
		Products: toProductRefInputs(req.Products),
	}
}

func toUpdateOrderInput(req updateOrderRequest) ports.UpdateOrderInput {
	return ports.UpdateOrderInput{
		UserID:   req.UserID,
		Client:   req.Client,
		Products: toProductRefInputs(req.Products),
		Status:   req.Status,
	}
}

func toProductRefInputs(refs []productRefRequest) []ports.ProductRefInput {
	out := make([]ports.ProductRefInput, len(refs))
	for i, ref := range refs {
		out[i] = ports.ProductRefInput{ProductID: ref.ProductID, Qty: ref.Qty}
	}
	return out
}

// --- Service result → HTTP response ---

func toOrderResponse(view *ports.OrderView, message string) orderResponse {
	lines := make([]productLineResponse, len(view.Products))
	for i, line := range view.Products {
		lines[i] = productLineResponse{
			Product: productResponse{
				ID:        line.Product.ID,
				Name:      line.Product.Name,
				Price:     line.Product.Price,
				Image:     line.Product.Image,
				Type:      line.Product.Type,
				DateEntry: line.Product.DateEntry.UTC(),
			},
			Qty: line.Qty,
		}
	}

	return orderResponse{
		ID:            view.ID,
		UserID:        view.UserID,
		Client:        view.Client,
		Products:      lines,
		Status:        view.Status,
		DateEntry:     view.DateEntry.UTC(),
		DateProcessed: formatDateProcessed(view.DateProcessed),
		Message:       message,
	}
}

func toOrderListResponse(result *ports.ListOrdersResult) []orderResponse {
	items := make([]orderResponse, len(result.Items))
	for i := range result.Items {
		items[i] = toOrderResponse(&result.Items[i], "")
	}
	return items
}

// formatDateProcessed keeps the historical contract: "" until the first update.
func formatDateProcessed(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
