package domain

import "fmt"

type SimulationType string

const (
	SimulationType_BuyAndHold SimulationType = "BUY_AND_HOLD"
	SimulationType_RiskBased  SimulationType = "RISK_BASED"
	SimulationType_Static     SimulationType = "STATIC"
)

// Strategy is the sum of the strategy variants a simulation can
// run. the set is closed: only types in this package implement it
type Strategy interface {
	isStrategy()
	Type() SimulationType
}

type BuyAndHoldStrategy struct{}

type RiskBasedStrategy struct {
	RiskTolerance               float64
	TransactionBufferPercentage float64
}

type StaticAllocationStrategy struct {
	RiskTolerance float64
}

func (BuyAndHoldStrategy) isStrategy()       {}
func (RiskBasedStrategy) isStrategy()        {}
func (StaticAllocationStrategy) isStrategy() {}

func (BuyAndHoldStrategy) Type() SimulationType       { return SimulationType_BuyAndHold }
func (RiskBasedStrategy) Type() SimulationType        { return SimulationType_RiskBased }
func (StaticAllocationStrategy) Type() SimulationType { return SimulationType_Static }

// Strategy lifts the flat request fields into the matching variant
func (r StockSimulationRequest) Strategy() (Strategy, error) {
	switch r.SimulationType {
	case SimulationType_BuyAndHold:
		return BuyAndHoldStrategy{}, nil
	case SimulationType_RiskBased:
		return RiskBasedStrategy{
			RiskTolerance:               r.RiskTolerance,
			TransactionBufferPercentage: r.TransactionBufferPercentage,
		}, nil
	case SimulationType_Static:
		return StaticAllocationStrategy{
			RiskTolerance: r.RiskTolerance,
		}, nil
	}
	return nil, fmt.Errorf("unknown simulation type %q", r.SimulationType)
}
