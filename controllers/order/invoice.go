package orderControllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// OrderInvoiceHandler renders a PDF receipt for one order.
// GET /orders/:orderID/invoice
func OrderInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("OrderProducts").
			First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, fmt.Sprintf("Order #%d", order.ID))
		pdf.Ln(12)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, "Customer: "+order.UserEmail)
		pdf.Ln(8)
		pdf.Cell(0, 8, "Placed: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
		pdf.Ln(12)

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(60, 8, "Product ID", "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, "Quantity", "1", 1, "R", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, line := range order.OrderProducts {
			pdf.CellFormat(60, 8, fmt.Sprintf("%d", line.ProductID), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 8, fmt.Sprintf("%d", line.Quantity), "1", 1, "R", false, 0, "")
		}

		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("Total quantity: %d", order.TotalQuantity))
		pdf.Ln(8)
		pdf.Cell(0, 8, fmt.Sprintf("Total price: $%.2f", order.TotalPrice))

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order_%d.pdf", order.ID))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
