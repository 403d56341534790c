package http

import (
	"net/http"
	"time"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

type favoriteView struct {
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	productID, err := uuidParam(r, "product_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.service.AddFavorite(r.Context(), userID, productID)
	if err != nil {
		writeMappedError(w, r, "add_favorite", err)
		return
	}
	if outcome == domain.FavoriteDuplicate {
		writeBusinessError(w, "already favorited")
		return
	}
	writeMessage(w, http.StatusOK, "favorite added")
}

func (h *Handler) isFavorited(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	productID, err := uuidParam(r, "product_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	present, err := h.service.IsFavorited(r.Context(), userID, productID)
	if err != nil {
		writeMappedError(w, r, "is_favorited", err)
		return
	}
	// Presence is encoded in the status field, not a boolean payload.
	if present {
		writeMessage(w, http.StatusOK, "already favorited")
		return
	}
	writeBusinessError(w, "not favorited")
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	productID, err := uuidParam(r, "product_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.RemoveFavorite(r.Context(), userID, productID); err != nil {
		writeMappedError(w, r, "remove_favorite", err)
		return
	}
	writeMessage(w, http.StatusOK, "favorite removed")
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		writeMappedError(w, r, "list_favorites", err)
		return
	}
	if len(favorites) == 0 {
		writeBusinessError(w, "no favorites found")
		return
	}

	views := make([]favoriteView, 0, len(favorites))
	for _, f := range favorites {
		views = append(views, favoriteView{
			ProductID: f.ProductID.String(),
			CreatedAt: f.CreatedAt,
		})
	}
	writeSuccess(w, http.StatusOK, map[string]any{"favorite": views})
}
