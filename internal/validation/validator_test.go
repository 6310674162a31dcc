package validation

import (
	"simcompare/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() domain.StockSimulationRequest {
	return domain.StockSimulationRequest{
		Broker:         "Trade Republic",
		Stocks:         []string{"AAPL"},
		StartDate:      "2023-01-01",
		EndDate:        "2023-12-31",
		StartCapital:   10000,
		SimulationType: domain.SimulationType_RiskBased,
		Indicators: domain.Indicators{
			domain.MACDIndicator{ShortPeriod: 12, LongPeriod: 26},
		},
		RiskTolerance:               5,
		TradingWeekdays:             []domain.Weekday{domain.Weekday_Monday},
		TransactionBufferPercentage: 2,
	}
}

func TestValidateSimulationRequest(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		errs, err := ValidateSimulationRequest(validRequest())
		require.NoError(t, err)
		require.Empty(t, errs)
	})

	t.Run("reports every failed field", func(t *testing.T) {
		req := validRequest()
		req.Broker = ""
		req.Stocks = nil
		req.StartCapital = 0
		req.EndDate = "2022-12-31"

		errs, err := ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Equal(t, []FieldError{
			{Field: "broker", Message: "broker is required"},
			{Field: "stocks", Message: "select at least one stock"},
			{Field: "startCapital", Message: "start capital must be greater than 0"},
			{Field: "endDate", Message: "end date must be after start date"},
		}, errs)
	})

	t.Run("buffer only checked for risk based", func(t *testing.T) {
		req := validRequest()
		req.SimulationType = domain.SimulationType_Static
		req.TransactionBufferPercentage = 250

		errs, err := ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Empty(t, errs)

		req.SimulationType = domain.SimulationType_RiskBased
		errs, err = ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Equal(t, []FieldError{
			{Field: "transactionBufferPercentage", Message: "transaction buffer must be between 0 and 100"},
		}, errs)
	})

	t.Run("buy and hold ignores risk tolerance", func(t *testing.T) {
		req := validRequest()
		req.SimulationType = domain.SimulationType_BuyAndHold
		req.RiskTolerance = 0

		errs, err := ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Empty(t, errs)
	})

	t.Run("invalid dates and weekdays", func(t *testing.T) {
		req := validRequest()
		req.StartDate = "yesterday"
		req.TradingWeekdays = []domain.Weekday{"FUNDAY"}

		errs, err := ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Equal(t, []FieldError{
			{Field: "startDate", Message: "start date must be a date (YYYY-MM-DD)"},
			{Field: "endDate", Message: "end date must be after start date"},
			{Field: "tradingWeekdays", Message: "unknown trading day"},
		}, errs)
	})

	t.Run("indicator periods", func(t *testing.T) {
		req := validRequest()
		req.Indicators = domain.Indicators{
			domain.BreakoutIndicator{Period: 0},
			domain.MovingAverageCrossoverIndicator{ShortPeriod: 50, LongPeriod: 20},
		}

		errs, err := ValidateSimulationRequest(req)
		require.NoError(t, err)
		require.Equal(t, []FieldError{
			{Field: "indicators[0].period", Message: "period must be greater than 0"},
			{Field: "indicators[1].longPeriod", Message: "long period must be greater than short period"},
		}, errs)
	})
}

func TestValidator_Validate(t *testing.T) {
	t.Run("non bool rule is an error", func(t *testing.T) {
		v := Validator{Rules: []Rule{{Field: "x", Expression: "x + 1", Message: "nope"}}}
		_, err := v.Validate(map[string]interface{}{"x": 1})
		require.Error(t, err)
	})

	t.Run("unknown variable is an error", func(t *testing.T) {
		v := Validator{Rules: []Rule{{Field: "x", Expression: "y > 1", Message: "nope"}}}
		_, err := v.Validate(map[string]interface{}{"x": 1})
		require.Error(t, err)
	})
}
