package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type ProductsHandler struct {
	productRepo repository.ProductRepo
}

func NewProductsHandler(pr repository.ProductRepo) *ProductsHandler {
	return &ProductsHandler{productRepo: pr}
}

type addProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	MOQ         int64    `json:"moq"`
	ImageURLs   []string `json:"image_urls"`
}

type addProductResponse struct {
	ID string `json:"id"`
}

func (h *ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "price must not be negative", http.StatusBadRequest)
		return
	}
	if req.MOQ <= 0 {
		req.MOQ = 1
	}

	p := &models.Product{
		DealerID:    profileIDFromContext(r.Context()),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MOQ:         req.MOQ,
		ImageURLs:   req.ImageURLs,
	}

	id, err := h.productRepo.CreateProduct(r.Context(), p)
	if err != nil {
		http.Error(w, "failed to store product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, addProductResponse{ID: id}, http.StatusCreated)
}

func (h *ProductsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.ListProductsByDealer(r.Context(), profileIDFromContext(r.Context()), 100)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, products, http.StatusOK)
}
