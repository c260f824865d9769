package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"shop-catalog-manager/internal/catalog"
	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/entity"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type handlers struct {
	svc *catalog.Service
}

func productsRouter(svc *catalog.Service) http.Handler {
	h := &handlers{svc: svc}
	r := chi.NewRouter()

	r.Get("/", h.listProducts)
	r.Get("/search", h.searchProducts)
	r.Get("/stats", h.stats)
	r.Post("/", h.createProduct)
	r.Post("/add-images", h.addImages)
	r.Post("/remove-images", h.removeImages)
	r.Post("/update-thumbnail/{id}", h.replaceThumbnail)
	r.Post("/related", h.addRelatedPairs)
	r.Delete("/related", h.removeRelated)
	r.Get("/{id}", h.getProduct)
	r.Patch("/{id}", h.patchProduct)
	r.Delete("/{id}", h.deleteProduct)
	r.Get("/{id}/related", h.getRelated)
	r.Post("/{id}/related/add", h.addRelatedIds)
	r.Post("/{id}/related/remove", h.removeRelatedIds)

	return r
}

func commentsRouter(svc *catalog.Service) http.Handler {
	h := &handlers{svc: svc}
	r := chi.NewRouter()

	r.Post("/", h.addComment)
	r.Delete("/{id}", h.deleteComment)

	return r
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}

// respondError maps the catalog error taxonomy onto status codes:
// NotFound -> 404, the BadRequest family -> 400, anything else -> 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cerr.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, cerr.ErrBadRequest),
		errors.Is(err, cerr.ErrDuplicateEdge),
		errors.Is(err, cerr.ErrDuplicateComment):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "something went wrong"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	withChildren := r.URL.Query().Get("children") != "false"
	products, err := h.svc.ListProducts(r.Context(), withChildren)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *handlers) searchProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSearchFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	products, err := h.svc.SearchProducts(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func parseSearchFilter(r *http.Request) (*entity.SearchFilter, error) {
	q := r.URL.Query()
	filter := &entity.SearchFilter{}

	if title := q.Get("title"); title != "" {
		filter.Title = &title
	}
	if raw := q.Get("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid minPrice", cerr.ErrBadRequest)
		}
		filter.MinPrice = &min
	}
	if raw := q.Get("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid maxPrice", cerr.ErrBadRequest)
		}
		filter.MaxPrice = &max
	}
	return filter, nil
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	var req entity.ProductCreate
	if !decodeBody(w, r, &req) {
		return
	}
	product, err := h.svc.CreateProduct(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *handlers) patchProduct(w http.ResponseWriter, r *http.Request) {
	var patch entity.ProductPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if err := h.svc.PatchProduct(r.Context(), chi.URLParam(r, "id"), &patch); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

type addImagesPayload struct {
	ProductId string               `json:"productId"`
	Images    []entity.ImageUpload `json:"images"`
}

func (h *handlers) addImages(w http.ResponseWriter, r *http.Request) {
	var payload addImagesPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	images, err := h.svc.AddImages(r.Context(), payload.ProductId, payload.Images)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, images)
}

func (h *handlers) removeImages(w http.ResponseWriter, r *http.Request) {
	var imageIds []string
	if !decodeBody(w, r, &imageIds) {
		return
	}
	if err := h.svc.RemoveImages(r.Context(), imageIds); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

type replaceThumbnailPayload struct {
	NewThumbnailId string `json:"newThumbnailId"`
}

func (h *handlers) replaceThumbnail(w http.ResponseWriter, r *http.Request) {
	var payload replaceThumbnailPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.svc.ReplaceThumbnail(r.Context(), chi.URLParam(r, "id"), payload.NewThumbnailId); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) getRelated(w http.ResponseWriter, r *http.Request) {
	related, err := h.svc.GetRelated(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, related)
}

func (h *handlers) addRelatedPairs(w http.ResponseWriter, r *http.Request) {
	var pairs []entity.RelationPair
	if !decodeBody(w, r, &pairs) {
		return
	}
	if err := h.svc.AddRelated(r.Context(), pairs); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

type relatedIdsPayload struct {
	RelatedIds []string `json:"relatedIds"`
}

func (h *handlers) addRelatedIds(w http.ResponseWriter, r *http.Request) {
	var payload relatedIdsPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.svc.AddRelatedIds(r.Context(), chi.URLParam(r, "id"), payload.RelatedIds); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

func (h *handlers) removeRelatedIds(w http.ResponseWriter, r *http.Request) {
	var payload relatedIdsPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.svc.RemoveRelated(r.Context(), chi.URLParam(r, "id"), payload.RelatedIds); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

type removeRelatedPayload struct {
	ProductId  string   `json:"productId"`
	RelatedIds []string `json:"relatedIds"`
}

func (h *handlers) removeRelated(w http.ResponseWriter, r *http.Request) {
	var payload removeRelatedPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.svc.RemoveRelated(r.Context(), payload.ProductId, payload.RelatedIds); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) addComment(w http.ResponseWriter, r *http.Request) {
	var req entity.CommentCreate
	if !decodeBody(w, r, &req) {
		return
	}
	comment, err := h.svc.AddComment(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

func (h *handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
