package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/store"
)

func NewProductsController(products ProductStore) *ProductsController {
	return &ProductsController{products: products}
}

type ProductsController struct {
	products ProductStore
}

func (ctrl *ProductsController) List(c *gin.Context) {
	products, err := ctrl.products.All(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductsController) Create(c *gin.Context) {
	var p store.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}

	if p.Name == "" || p.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name and price are required"})
		return
	}

	created, err := ctrl.products.Create(c.Request.Context(), p)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *ProductsController) Update(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var p store.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}

	if err := ctrl.products.Update(c.Request.Context(), id, p); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (ctrl *ProductsController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := ctrl.products.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
