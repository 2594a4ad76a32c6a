package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

func GetOrders(c *gin.Context) {
	repo := repositories.OrderRepository{}

	orders, err := repo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"rowCount": len(orders),
		"orders":   orders,
	})
}

// CreateOrder inserts a Planned order. Miles and revenue must arrive as
// JSON numbers; a string like "abc" is rejected before any write.
func CreateOrder(c *gin.Context) {
	var body struct {
		Customer    *string  `json:"customer"`
		Origin      string   `json:"origin"`
		Destination string   `json:"destination"`
		Miles       *float64 `json:"miles"`
		Revenue     *float64 `json:"revenue"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalid(c, "origin, destination, miles, and revenue are required (miles & revenue must be numbers).")
		return
	}
	if body.Origin == "" || body.Destination == "" || body.Miles == nil || body.Revenue == nil {
		respondInvalid(c, "origin, destination, miles, and revenue are required (miles & revenue must be numbers).")
		return
	}

	repo := repositories.OrderRepository{}
	order, err := repo.Insert(body.Customer, body.Origin, body.Destination, int64(*body.Miles), *body.Revenue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}
