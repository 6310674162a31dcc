package api

import (
	"fmt"
	"net/http"
	"simcompare/internal/domain"
	"simcompare/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addComparisonRequest struct {
	Name          string   `json:"name"`
	SimulationIDs []string `json:"simulationIds"`
}

type getComparisonResponse struct {
	SavedComparison domain.SavedComparison `json:"savedComparison"`
	Comparison      service.Comparison     `json:"comparison"`
}

func (m ApiHandler) addComparison(c *gin.Context) {
	var requestBody addComparisonRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(requestBody.Name) == "" {
		returnErrorJsonCode(fmt.Errorf("comparison name is required"), c, http.StatusBadRequest)
		return
	}
	// saved comparisons are replayed through Compare, so store only
	// id lists it would accept
	if err := service.ValidateSimulationIDs(requestBody.SimulationIDs); err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.SavedComparisonRepository.Add(domain.SavedComparison{
		UserID:        c.GetString(userIDKey),
		Name:          strings.TrimSpace(requestBody.Name),
		SimulationIDs: requestBody.SimulationIDs,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

func (m ApiHandler) listComparisons(c *gin.Context) {
	out, err := m.SavedComparisonRepository.ListByUser(c.GetString(userIDKey))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

func (m ApiHandler) getComparison(c *gin.Context) {
	savedComparisonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid comparison id: %w", err), c, http.StatusBadRequest)
		return
	}

	saved, err := m.SavedComparisonRepository.Get(savedComparisonID, c.GetString(userIDKey))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	comparison, err := m.ComparisonService.Compare(c.Request.Context(), saved.SimulationIDs)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getComparisonResponse{
		SavedComparison: *saved,
		Comparison:      *comparison,
	})
}

func (m ApiHandler) deleteComparison(c *gin.Context) {
	savedComparisonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid comparison id: %w", err), c, http.StatusBadRequest)
		return
	}

	err = m.SavedComparisonRepository.Delete(savedComparisonID, c.GetString(userIDKey))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Status(http.StatusNoContent)
}
