package validation

import (
	"fmt"
	"simcompare/internal/util"
	"time"

	"github.com/maja42/goval"
)

// Rule is a declarative check: Expression is evaluated against the
// input's variables and must be true for the input to be valid
type Rule struct {
	Field      string
	Expression string
	Message    string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Rules []Rule
}

// Validate returns every failed rule. the error is only set when a rule
// itself is broken (bad syntax, unknown variable, non-bool result)
func (v Validator) Validate(variables map[string]interface{}) ([]FieldError, error) {
	eval := goval.NewEvaluator()
	functions := constructFunctionMap()

	out := []FieldError{}
	for _, rule := range v.Rules {
		result, err := eval.Evaluate(rule.Expression, variables, functions)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate rule for %s (%s): %w", rule.Field, rule.Expression, err)
		}
		ok, isBool := result.(bool)
		if !isBool {
			return nil, fmt.Errorf("rule for %s must evaluate to a bool, got %T", rule.Field, result)
		}
		if !ok {
			out = append(out, FieldError{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}

	return out, nil
}

func constructFunctionMap() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		// isDate(s)
		"isDate": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return false, fmt.Errorf("isDate needs 1 arg, got %d", len(args))
			}
			s, ok := args[0].(string)
			if !ok {
				return false, nil
			}
			_, err := util.ParseDate(s)
			return err == nil, nil
		},
		// dateBefore(a, b) is false if either date is invalid
		"dateBefore": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return false, fmt.Errorf("dateBefore needs 2 args, got %d", len(args))
			}
			dates := []time.Time{}
			for _, a := range args {
				s, ok := a.(string)
				if !ok {
					return false, nil
				}
				d, err := util.ParseDate(s)
				if err != nil {
					return false, nil
				}
				dates = append(dates, d)
			}
			return dates[0].Before(dates[1]), nil
		},
	}
}
