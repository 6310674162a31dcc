package calculator

import (
	"simcompare/internal/domain"
)

type snapshot struct {
	date  string
	value float64
	// symbol -> {quantity, fee}
	trades map[string][2]float64
}

func newResult(id string, startCapital float64, snapshots ...snapshot) domain.SimulationResult {
	portfolios := []domain.UserPortfolio{}
	for _, s := range snapshots {
		bought := map[string]domain.ShareTransaction{}
		for symbol, t := range s.trades {
			bought[symbol] = domain.ShareTransaction{
				Symbol:         symbol,
				Quantity:       t[0],
				TransactionFee: t[1],
			}
		}
		portfolios = append(portfolios, domain.UserPortfolio{
			Date:                s.date,
			TotalPortfolioValue: s.value,
			CashBalance:         s.value,
			SharesBought:        bought,
		})
	}

	return domain.SimulationResult{
		ID:           id,
		CurrencyType: "EUR",
		StockSimulationRequest: domain.StockSimulationRequest{
			StartCapital:   startCapital,
			SimulationType: domain.SimulationType_BuyAndHold,
		},
		UserPortfolios: portfolios,
	}
}
