package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"simcompare/internal/domain"
	"simcompare/internal/validation"

	"github.com/gin-gonic/gin"
)

type validateSimulationResponse struct {
	Valid  bool                    `json:"valid"`
	Errors []validation.FieldError `json:"errors"`
}

func (m ApiHandler) validateSimulation(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	req := domain.StockSimulationRequest{}
	err = json.Unmarshal(body, &req)
	if errors.Is(err, domain.ErrUnrecognizedIndicator) {
		returnErrorJson(err, c)
		return
	} else if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse simulation request: %w", err), c, http.StatusBadRequest)
		return
	}

	fieldErrors, err := validation.ValidateSimulationRequest(req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, validateSimulationResponse{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	})
}
