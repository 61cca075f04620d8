package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

type CheckoutHandler struct {
	checkout   port.CheckoutProcessor
	currencies port.CurrencySelector
}

func RegisterCheckout(
	mux *http.ServeMux,
	requireAuth Middleware,
	checkout port.CheckoutProcessor,
	currencies port.CurrencySelector,
) {
	h := CheckoutHandler{checkout, currencies}
	mux.Handle("POST /v1/orders",
		requireAuth(http.HandlerFunc(h.PostOrder)))
	mux.Handle("GET /v1/orders",
		requireAuth(http.HandlerFunc(h.GetOrders)))
}

func (h CheckoutHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostOrder"
	log := slog.With("op", op)

	var req PlaceOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	order, err := h.checkout.PlaceOrder(
		r.Context(), p.userID, req.PaymentMethod, domain.ShippingAddress{
			FullName: req.Shipping.FullName,
			Street:   req.Shipping.Street,
			City:     req.Shipping.City,
			Country:  req.Shipping.Country,
			Phone:    req.Shipping.Phone,
		},
	)
	if err != nil {
		log.Warn("failed to place order", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusCreated, orderToView(order, cur))

	log.Info("order placed",
		"orderID", order.ID, "totalPrice", order.TotalPrice)
}

func (h CheckoutHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.GetOrders"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	orders, err := h.checkout.Orders(r.Context(), p.userID)
	if err != nil {
		log.Error("failed to list orders", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	vs := make([]OrderView, len(orders))
	for i, o := range orders {
		vs[i] = orderToView(o, cur)
	}
	writeJSON(w, http.StatusOK, vs)
}
