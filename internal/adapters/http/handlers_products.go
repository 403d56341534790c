package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gurushop/commerce-ledger/internal/domain"
	"github.com/gurushop/commerce-ledger/internal/ports"
)

type productView struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Model          string          `json:"model"`
	ListPrice      decimal.Decimal `json:"list_price"`
	ProductImgPath string          `json:"product_img_path,omitempty"`
}

func toProductView(p domain.Product) productView {
	return productView{
		ProductID:      p.ProductID.String(),
		ProductName:    p.Name,
		Model:          p.Model,
		ListPrice:      p.ListPrice,
		ProductImgPath: p.ImagePath,
	}
}

func (h *Handler) productCard(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "product_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.service.ProductCard(r.Context(), productID)
	if err != nil {
		writeMappedError(w, r, "product_card", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"product": toProductView(product)})
}

func (h *Handler) productList(w http.ResponseWriter, r *http.Request) {
	query := ports.ProductQuery{
		Search: r.URL.Query().Get("search"),
		Page:   parseIntDefault(r.URL.Query().Get("page"), 1),
	}

	page, err := h.service.ListProducts(r.Context(), query)
	if err != nil {
		writeMappedError(w, r, "product_list", err)
		return
	}

	views := make([]productView, 0, len(page.Items))
	for _, p := range page.Items {
		views = append(views, toProductView(p))
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"products":   views,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}
