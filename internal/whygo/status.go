package whygo

import (
	"math"
	"strings"
)

// Pace thresholds as percentage of target. Fixed by the WhyGO framework,
// not configurable.
const (
	onPaceThreshold      = 100.0
	slightlyOffThreshold = 80.0
)

// DeriveStatus computes the pace symbol for one quarter by comparing actual
// to target under the metric type's rules.
//
// Numeric metrics (number, currency, percentage) use the actual/target ratio:
// '+' at 100% or above, '~' from 80% up, '-' below. A target of exactly zero
// is on pace only when the actual is also zero. Values that cannot be coerced
// to a number degrade to '-' rather than failing the recording pipeline.
//
// Exact-match metrics (milestone, boolean) compare the trimmed,
// case-insensitive forms; no partial credit. A numeric actual against a text
// target (or vice versa) is a type mismatch and counts as off pace.
//
// Returns StatusNone when either side is absent. Pure function.
func DeriveStatus(metricType MetricType, target, actual *Value) Status {
	if target == nil || actual == nil {
		return StatusNone
	}

	switch metricType {
	case MetricNumber, MetricCurrency, MetricPercentage:
		targetVal, err := target.Float()
		if err != nil {
			return StatusOffPace
		}
		actualVal, err := actual.Float()
		if err != nil {
			return StatusOffPace
		}

		if targetVal == 0 {
			if actualVal == 0 {
				return StatusOnPace
			}
			return StatusOffPace
		}

		percentage := actualVal / targetVal * 100
		switch {
		case percentage >= onPaceThreshold:
			return StatusOnPace
		case percentage >= slightlyOffThreshold:
			return StatusSlightlyOff
		default:
			return StatusOffPace
		}

	case MetricMilestone, MetricBoolean:
		if target.Kind != actual.Kind {
			return StatusOffPace
		}
		if target.Kind == KindNumeric {
			if target.Num == actual.Num {
				return StatusOnPace
			}
			return StatusOffPace
		}
		if strings.EqualFold(strings.TrimSpace(target.Text), strings.TrimSpace(actual.Text)) {
			return StatusOnPace
		}
		return StatusOffPace
	}

	// Unknown metric type; unreachable given the closed set.
	return StatusOffPace
}

// CompletionPercentage returns the actual/target ratio for one quarter as a
// percentage rounded to one decimal, or nil for non-numeric metric types,
// missing data, or values without a numeric form. A zero target yields 100
// only when the actual is also zero; any other actual has no defined ratio.
func CompletionPercentage(metricType MetricType, target, actual *Value) *float64 {
	if !metricType.IsNumeric() {
		return nil
	}
	if target == nil || actual == nil {
		return nil
	}

	targetVal, err := target.Float()
	if err != nil {
		return nil
	}
	actualVal, err := actual.Float()
	if err != nil {
		return nil
	}

	if targetVal == 0 {
		if actualVal == 0 {
			p := 100.0
			return &p
		}
		return nil
	}

	p := math.Round(actualVal/targetVal*1000) / 10
	return &p
}
