package validation

import (
	"fmt"
	"simcompare/internal/domain"
)

var SimulationRequestRules = []Rule{
	{Field: "broker", Expression: `broker != ""`, Message: "broker is required"},
	{Field: "stocks", Expression: `stockCount > 0`, Message: "select at least one stock"},
	{Field: "startCapital", Expression: `startCapital > 0.0`, Message: "start capital must be greater than 0"},
	{Field: "startDate", Expression: `isDate(startDate)`, Message: "start date must be a date (YYYY-MM-DD)"},
	{Field: "endDate", Expression: `isDate(endDate)`, Message: "end date must be a date (YYYY-MM-DD)"},
	{Field: "endDate", Expression: `dateBefore(startDate, endDate)`, Message: "end date must be after start date"},
	{Field: "tradingWeekdays", Expression: `weekdayCount > 0`, Message: "select at least one trading day"},
	{Field: "tradingWeekdays", Expression: `invalidWeekdayCount == 0`, Message: "unknown trading day"},
	{Field: "simulationType", Expression: `simulationType == "BUY_AND_HOLD" || simulationType == "RISK_BASED" || simulationType == "STATIC"`, Message: "unknown simulation type"},
	{
		Field:      "riskTolerance",
		Expression: `simulationType == "BUY_AND_HOLD" || (riskTolerance > 0.0 && riskTolerance <= 100.0)`,
		Message:    "risk tolerance must be between 0 and 100",
	},
	{
		Field:      "transactionBufferPercentage",
		Expression: `simulationType != "RISK_BASED" || (transactionBufferPercentage >= 0.0 && transactionBufferPercentage <= 100.0)`,
		Message:    "transaction buffer must be between 0 and 100",
	},
}

var IndicatorRules = []Rule{
	{Field: "period", Expression: `indicatorType != "BREAKOUT" || period > 0`, Message: "period must be greater than 0"},
	{Field: "shortPeriod", Expression: `indicatorType == "BREAKOUT" || shortPeriod > 0`, Message: "short period must be greater than 0"},
	{Field: "longPeriod", Expression: `indicatorType == "BREAKOUT" || longPeriod > shortPeriod`, Message: "long period must be greater than short period"},
}

// ValidateSimulationRequest runs the request rules and then the
// indicator rules for each configured indicator
func ValidateSimulationRequest(req domain.StockSimulationRequest) ([]FieldError, error) {
	invalidWeekdays := 0
	for _, w := range req.TradingWeekdays {
		if !w.Valid() {
			invalidWeekdays++
		}
	}

	variables := map[string]interface{}{
		"broker":                      req.Broker,
		"stockCount":                  len(req.Stocks),
		"startCapital":                req.StartCapital,
		"startDate":                   req.StartDate,
		"endDate":                     req.EndDate,
		"weekdayCount":                len(req.TradingWeekdays),
		"invalidWeekdayCount":         invalidWeekdays,
		"simulationType":              string(req.SimulationType),
		"riskTolerance":               req.RiskTolerance,
		"transactionBufferPercentage": req.TransactionBufferPercentage,
	}

	out, err := Validator{Rules: SimulationRequestRules}.Validate(variables)
	if err != nil {
		return nil, err
	}

	indicatorValidator := Validator{Rules: IndicatorRules}
	for i, indicator := range req.Indicators {
		variables, err := indicatorVariables(indicator)
		if err != nil {
			return nil, err
		}
		fieldErrors, err := indicatorValidator.Validate(variables)
		if err != nil {
			return nil, err
		}
		for _, fe := range fieldErrors {
			fe.Field = fmt.Sprintf("indicators[%d].%s", i, fe.Field)
			out = append(out, fe)
		}
	}

	return out, nil
}

func indicatorVariables(indicator domain.Indicator) (map[string]interface{}, error) {
	variables := map[string]interface{}{
		"indicatorType": string(indicator.Type()),
		"period":        0,
		"shortPeriod":   0,
		"longPeriod":    0,
	}
	switch i := indicator.(type) {
	case domain.MovingAverageCrossoverIndicator:
		variables["shortPeriod"] = i.ShortPeriod
		variables["longPeriod"] = i.LongPeriod
	case domain.BreakoutIndicator:
		variables["period"] = i.Period
	case domain.MACDIndicator:
		variables["shortPeriod"] = i.ShortPeriod
		variables["longPeriod"] = i.LongPeriod
	default:
		return nil, domain.UnrecognizedIndicatorError{Type: fmt.Sprintf("%T", indicator)}
	}
	return variables, nil
}
