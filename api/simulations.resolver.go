package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listSimulations(c *gin.Context) {
	out, err := m.SimulationRepository.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

func (m ApiHandler) simulationSummary(c *gin.Context) {
	summary, err := m.ComparisonService.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summary)
}
