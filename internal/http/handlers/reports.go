package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/services"
)

func GetTripsReport(c *gin.Context) {
	svc := services.ReportsService{}

	trips, err := svc.TripsReport()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "trips": trips})
}

// GetTripsReportPDF serves the same report rendered as a PDF.
func GetTripsReportPDF(c *gin.Context) {
	svc := services.ReportsService{}

	pdfBytes, filename, err := svc.TripsReportPDF()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
