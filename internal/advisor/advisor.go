package advisor

import (
	"strconv"
	"strings"

	"github.com/pondplan/pondplan/internal/calc"
)

// Rule is one configurable advisory: when Condition holds for a result,
// Message is surfaced alongside the engine's own warnings.
type Rule struct {
	Name      string
	Condition string // "field op value", see evalCondition
	Message   string
}

// Evaluate returns the messages of every rule whose condition holds for
// res, in rule order. Rules with empty messages fall back to their name.
func Evaluate(rules []Rule, res *calc.Result) []string {
	var fired []string
	for _, r := range rules {
		if ok, _ := evalCondition(r.Condition, res); ok {
			msg := r.Message
			if msg == "" {
				msg = r.Name
			}
			fired = append(fired, msg)
		}
	}
	return fired
}

// evalCondition evaluates a rule condition string against a result.
//
// Supported expressions (field operator value):
//
//	days > 30
//	total_hours >= 100
//	excavation_rate < 20
//	hauling_rate < 20
//	bottleneck == hauling
//	bottleneck == excavation
//
// Returns (fires bool, triggering value float64).
// Returns (false, 0) if the expression cannot be parsed or the field is
// unknown.
func evalCondition(cond string, res *calc.Result) (bool, float64) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, 0
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	if field == "bottleneck" {
		if op == "==" {
			return string(res.Bottleneck) == rhs, 0
		}
		return false, 0
	}

	v, ok := numericField(field, res)
	if !ok {
		return false, 0
	}
	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return false, 0
	}
	return compareFloat(v, op, threshold), v
}

// numericField maps a field name to its value in the result.
func numericField(field string, res *calc.Result) (float64, bool) {
	switch field {
	case "days":
		return float64(res.Days), true
	case "total_hours":
		return res.TotalHours, true
	case "excavation_rate":
		return res.ExcavationRate, true
	case "hauling_rate":
		return res.HaulingRate, true
	default:
		return 0, false
	}
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	default:
		return false
	}
}
