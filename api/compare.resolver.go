package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type compareRequest struct {
	SimulationIDs []string `json:"simulationIds"`
}

func (m ApiHandler) compare(c *gin.Context) {
	var requestBody compareRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	comparison, err := m.ComparisonService.Compare(c.Request.Context(), requestBody.SimulationIDs)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, comparison)
}

func (m ApiHandler) compareCsv(c *gin.Context) {
	var requestBody compareRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	comparison, err := m.ComparisonService.Compare(c.Request.Context(), requestBody.SimulationIDs)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	buf := &bytes.Buffer{}
	err = m.ComparisonService.ExportCSV(*comparison, buf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="comparison.csv"`)
	c.Data(200, "text/csv", buf.Bytes())
}
