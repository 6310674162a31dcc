package domain

import (
	"encoding/json"
	"time"
)

// SimulationResult is a finished simulation as returned by the
// simulation backend. it is read-only here
type SimulationResult struct {
	ID                     string                 `json:"id"`
	SimulationDate         time.Time              `json:"simulationDate"`
	StockSimulationRequest StockSimulationRequest `json:"stockSimulationRequest"`
	UserPortfolios         []UserPortfolio        `json:"userPortfolios"`
	// per-stock analytics computed by the backend, we only pass
	// these through to the client
	SimulationReports json.RawMessage `json:"simulationReports,omitempty"`
	CurrencyType      string          `json:"currencyType"`
}

// StartCapital is the capital the simulation was configured with
func (r SimulationResult) StartCapital() float64 {
	return r.StockSimulationRequest.StartCapital
}

// Currency returns the currency used to display money values. the
// result's own currency wins over the one on the request
func (r SimulationResult) Currency() string {
	if r.CurrencyType != "" {
		return r.CurrencyType
	}
	return r.StockSimulationRequest.CurrencyType
}

func (r SimulationResult) FirstPortfolio() (*UserPortfolio, error) {
	if len(r.UserPortfolios) == 0 {
		return nil, ErrEmptySeries
	}
	return &r.UserPortfolios[0], nil
}

func (r SimulationResult) LastPortfolio() (*UserPortfolio, error) {
	if len(r.UserPortfolios) == 0 {
		return nil, ErrEmptySeries
	}
	return &r.UserPortfolios[len(r.UserPortfolios)-1], nil
}

// Clone returns a deep copy, no slice or map is shared with r
func (r SimulationResult) Clone() SimulationResult {
	out := r
	out.StockSimulationRequest = r.StockSimulationRequest.Clone()
	if r.SimulationReports != nil {
		out.SimulationReports = append(json.RawMessage{}, r.SimulationReports...)
	}
	if r.UserPortfolios != nil {
		out.UserPortfolios = make([]UserPortfolio, len(r.UserPortfolios))
		for i, p := range r.UserPortfolios {
			out.UserPortfolios[i] = p.Clone()
		}
	}
	return out
}

func (r SimulationResult) HistoryEntry() SimulationHistoryEntry {
	return SimulationHistoryEntry{
		ID:             r.ID,
		SimulationDate: r.SimulationDate,
		SimulationType: r.StockSimulationRequest.SimulationType,
		Stocks:         r.StockSimulationRequest.Stocks,
		StartDate:      r.StockSimulationRequest.StartDate,
		EndDate:        r.StockSimulationRequest.EndDate,
	}
}

type StockSimulationRequest struct {
	Broker                      string         `json:"broker"`
	Stocks                      []string       `json:"stocks"`
	StartDate                   string         `json:"startDate"`
	EndDate                     string         `json:"endDate"`
	StartCapital                float64        `json:"startCapital"`
	SimulationType              SimulationType `json:"simulationType"`
	Indicators                  Indicators     `json:"indicators"`
	RiskTolerance               float64        `json:"riskTolerance"`
	TradingWeekdays             []Weekday      `json:"tradingWeekdays"`
	TransactionBufferPercentage float64        `json:"transactionBufferPercentage"`
	CurrencyType                string         `json:"currencyType"`
}

func (r StockSimulationRequest) Clone() StockSimulationRequest {
	out := r
	if r.Stocks != nil {
		out.Stocks = append([]string{}, r.Stocks...)
	}
	if r.Indicators != nil {
		// the variants are plain value structs
		out.Indicators = append(Indicators{}, r.Indicators...)
	}
	if r.TradingWeekdays != nil {
		out.TradingWeekdays = append([]Weekday{}, r.TradingWeekdays...)
	}
	return out
}

// UserPortfolio is one day's snapshot of the simulated portfolio
type UserPortfolio struct {
	Date                string                      `json:"date"`
	CashBalance         float64                     `json:"cashBalance"`
	TotalPortfolioValue float64                     `json:"totalPortfolioValue"`
	ShareHoldings       map[string]ShareHolding     `json:"shareHoldings"`
	SharesBought        map[string]ShareTransaction `json:"sharesBought"`
}

func (p UserPortfolio) Clone() UserPortfolio {
	out := p
	if p.ShareHoldings != nil {
		out.ShareHoldings = make(map[string]ShareHolding, len(p.ShareHoldings))
		for k, v := range p.ShareHoldings {
			out.ShareHoldings[k] = v
		}
	}
	if p.SharesBought != nil {
		out.SharesBought = make(map[string]ShareTransaction, len(p.SharesBought))
		for k, v := range p.SharesBought {
			out.SharesBought[k] = v
		}
	}
	return out
}

type ShareHolding struct {
	Symbol   string  `json:"stockSymbol"`
	Quantity float64 `json:"quantityOwned"`
	Price    float64 `json:"price"`
}

// ShareTransaction is a trade for one symbol on one day. Quantity is
// signed: positive is a buy, negative a sell, and zero means no trade
// happened for that symbol on that day
type ShareTransaction struct {
	Symbol         string  `json:"stockSymbol"`
	Quantity       float64 `json:"quantity"`
	TransactionFee float64 `json:"transactionFee"`
}

func (t ShareTransaction) IsTrade() bool {
	return t.Quantity != 0
}

// SimulationHistoryEntry is the slim version of a result used for
// listing previous simulations
type SimulationHistoryEntry struct {
	ID             string         `json:"id"`
	SimulationDate time.Time      `json:"simulationDate"`
	SimulationType SimulationType `json:"simulationType"`
	Stocks         []string       `json:"stocks"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
}
