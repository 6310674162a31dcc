package domain

import (
	"encoding/json"
	"fmt"
)

type IndicatorType string

const (
	IndicatorType_MovingAverageCrossover IndicatorType = "MOVING_AVERAGE_CROSSOVER"
	IndicatorType_Breakout               IndicatorType = "BREAKOUT"
	IndicatorType_MACD                   IndicatorType = "MACD"
)

// Indicator is a technical indicator a simulation was configured
// with. only the variants below implement it
type Indicator interface {
	isIndicator()
	Type() IndicatorType
}

type MovingAverageCrossoverIndicator struct {
	ShortPeriod int `json:"shortPeriod"`
	LongPeriod  int `json:"longPeriod"`
}

type BreakoutIndicator struct {
	Period int `json:"period"`
}

type MACDIndicator struct {
	ShortPeriod int `json:"shortPeriod"`
	LongPeriod  int `json:"longPeriod"`
}

func (MovingAverageCrossoverIndicator) isIndicator() {}
func (BreakoutIndicator) isIndicator()               {}
func (MACDIndicator) isIndicator()                   {}

func (MovingAverageCrossoverIndicator) Type() IndicatorType {
	return IndicatorType_MovingAverageCrossover
}
func (BreakoutIndicator) Type() IndicatorType { return IndicatorType_Breakout }
func (MACDIndicator) Type() IndicatorType     { return IndicatorType_MACD }

// Indicators is the tagged-union list as it appears on the wire:
// every element carries a "type" discriminator
type Indicators []Indicator

type indicatorEnvelope struct {
	Type        IndicatorType `json:"type"`
	ShortPeriod int           `json:"shortPeriod,omitempty"`
	LongPeriod  int           `json:"longPeriod,omitempty"`
	Period      int           `json:"period,omitempty"`
}

func (in *Indicators) UnmarshalJSON(b []byte) error {
	envelopes := []indicatorEnvelope{}
	if err := json.Unmarshal(b, &envelopes); err != nil {
		return fmt.Errorf("failed to decode indicators: %w", err)
	}

	out := Indicators{}
	for _, e := range envelopes {
		switch e.Type {
		case IndicatorType_MovingAverageCrossover:
			out = append(out, MovingAverageCrossoverIndicator{ShortPeriod: e.ShortPeriod, LongPeriod: e.LongPeriod})
		case IndicatorType_Breakout:
			out = append(out, BreakoutIndicator{Period: e.Period})
		case IndicatorType_MACD:
			out = append(out, MACDIndicator{ShortPeriod: e.ShortPeriod, LongPeriod: e.LongPeriod})
		default:
			return UnrecognizedIndicatorError{Type: string(e.Type)}
		}
	}
	*in = out

	return nil
}

func (in Indicators) MarshalJSON() ([]byte, error) {
	envelopes := []indicatorEnvelope{}
	for _, indicator := range in {
		switch i := indicator.(type) {
		case MovingAverageCrossoverIndicator:
			envelopes = append(envelopes, indicatorEnvelope{Type: i.Type(), ShortPeriod: i.ShortPeriod, LongPeriod: i.LongPeriod})
		case BreakoutIndicator:
			envelopes = append(envelopes, indicatorEnvelope{Type: i.Type(), Period: i.Period})
		case MACDIndicator:
			envelopes = append(envelopes, indicatorEnvelope{Type: i.Type(), ShortPeriod: i.ShortPeriod, LongPeriod: i.LongPeriod})
		default:
			return nil, UnrecognizedIndicatorError{Type: fmt.Sprintf("%T", indicator)}
		}
	}
	return json.Marshal(envelopes)
}
