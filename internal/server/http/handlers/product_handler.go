package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/server/http/dto"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// ProductHandler manages listing endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentUserID(c), CurrentUserRole(c), usecase.CreateProductInput{
		Name:              req.Name,
		Unit:              req.Unit,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Mine handles GET /api/farmer/products.
func (h *ProductHandler) Mine(c *gin.Context) {
	products, err := h.facade.ProductsByFarmer(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Farmer:            p.FarmerID,
		Name:              p.Name,
		Unit:              p.Unit,
		Price:             p.Price,
		QuantityAvailable: p.QuantityAvailable,
		CreatedAt:         p.CreatedAt,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response
}
