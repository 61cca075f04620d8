package httphandler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

// GET /v1/products lists the visible catalog, narrowed by the query
// params q, categories, sizes, price_min and price_max.
// GET /v1/products/{id} returns a single product.
type CatalogHandler struct {
	viewer     port.CatalogViewer
	currencies port.CurrencySelector
}

func RegisterCatalog(
	mux *http.ServeMux,
	optionalAuth Middleware,
	viewer port.CatalogViewer,
	currencies port.CurrencySelector,
) {
	h := CatalogHandler{viewer, currencies}
	mux.Handle(
		"GET /v1/products",
		optionalAuth(http.HandlerFunc(h.GetProducts)),
	)
	mux.Handle(
		"GET /v1/products/{id}",
		optionalAuth(http.HandlerFunc(h.GetProduct)),
	)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	f := parseFilters(r)

	ps, err := h.viewer.VisibleProducts(r.Context(), f)
	if err != nil {
		log.Error("failed to list products", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusOK, productsToView(ps, cur))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.viewer.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Warn("failed to get product", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusOK, productToView(p, cur))
}

func parseFilters(r *http.Request) domain.Filters {
	q := r.URL.Query()

	var f domain.Filters
	f.SearchQuery = q.Get("q")

	for _, v := range splitParam(q["categories"]) {
		f.Categories = append(f.Categories, domain.Category(v))
	}
	for _, v := range splitParam(q["sizes"]) {
		f.Sizes = append(f.Sizes, domain.Size(v))
	}

	// One present bound leaves the other end open: a lone price_min
	// must not pin the maximum to zero.
	minS, maxS := q.Get("price_min"), q.Get("price_max")
	if minS != "" || maxS != "" {
		f.PriceRange.Min, _ = strconv.ParseFloat(minS, 64)
		if maxS == "" {
			f.PriceRange.Max = math.Inf(1)
		} else {
			f.PriceRange.Max, _ = strconv.ParseFloat(maxS, 64)
		}
	}

	return f
}

func splitParam(vs []string) []string {
	var out []string
	for _, v := range vs {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// viewingCurrency resolves the price display currency. Anonymous
// visitors and lookup failures fall back to USD.
func viewingCurrency(
	r *http.Request, currencies port.CurrencySelector,
) domain.Currency {
	p, ok := requestUser(r)
	if !ok {
		return domain.CurrencyUSD
	}
	cur, err := currencies.Currency(r.Context(), p.userID)
	if err != nil {
		return domain.CurrencyUSD
	}
	return cur
}
