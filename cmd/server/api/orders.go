package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/store"
)

func NewOrdersController(orders OrderStore) *OrdersController {
	return &OrdersController{orders: orders}
}

type OrdersController struct {
	orders OrderStore
}

func (ctrl *OrdersController) Create(c *gin.Context) {
	var o store.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}

	created, err := ctrl.orders.Create(c.Request.Context(), o)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ctrl *OrdersController) List(c *gin.Context) {
	orders, err := ctrl.orders.All(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (ctrl *OrdersController) ListByStatus(c *gin.Context) {
	orders, err := ctrl.orders.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (ctrl *OrdersController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order status is required"})
		return
	}

	if err := ctrl.orders.UpdateStatus(c.Request.Context(), id, body.Status); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

func (ctrl *OrdersController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !store.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if err := ctrl.orders.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
