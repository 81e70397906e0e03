package whygo

import "fmt"

type MetricType string

const (
	MetricNumber     MetricType = "number"
	MetricPercentage MetricType = "percentage"
	MetricCurrency   MetricType = "currency"
	MetricBoolean    MetricType = "boolean"
	MetricMilestone  MetricType = "milestone"
)

var AllMetricTypes = []MetricType{
	MetricNumber,
	MetricPercentage,
	MetricCurrency,
	MetricBoolean,
	MetricMilestone,
}

func (m MetricType) IsValid() bool {
	for _, v := range AllMetricTypes {
		if m == v {
			return true
		}
	}
	return false
}

// IsNumeric reports whether status for this metric is derived from the
// actual/target ratio rather than exact match.
func (m MetricType) IsNumeric() bool {
	return m == MetricNumber || m == MetricPercentage || m == MetricCurrency
}

type GoalStatus string

const (
	GoalStatusDraft           GoalStatus = "draft"
	GoalStatusPendingApproval GoalStatus = "pending_approval"
	GoalStatusApproved        GoalStatus = "approved"
	GoalStatusArchived        GoalStatus = "archived"
)

var AllGoalStatuses = []GoalStatus{
	GoalStatusDraft,
	GoalStatusPendingApproval,
	GoalStatusApproved,
	GoalStatusArchived,
}

func (s GoalStatus) IsValid() bool {
	for _, v := range AllGoalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Quarter identifies one of the four fixed fiscal quarters. It doubles as the
// index into an Outcome's target/actual/status arrays.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var AllQuarters = []Quarter{Q1, Q2, Q3, Q4}

func ParseQuarter(s string) (Quarter, error) {
	q := Quarter(s)
	for _, v := range AllQuarters {
		if q == v {
			return q, nil
		}
	}
	return "", fmt.Errorf("invalid quarter %q", s)
}

// Index returns the 0-based array slot for the quarter. Quarters outside the
// fixed set map to -1; callers go through ParseQuarter first.
func (q Quarter) Index() int {
	switch q {
	case Q1:
		return 0
	case Q2:
		return 1
	case Q3:
		return 2
	case Q4:
		return 3
	}
	return -1
}

// Status is the tri-state pace symbol for an outcome in a quarter. The zero
// value means not yet derived and serializes as JSON null.
type Status string

const (
	StatusNone        Status = ""
	StatusOnPace      Status = "+"
	StatusSlightlyOff Status = "~"
	StatusOffPace     Status = "-"
)

type PersonLevel string

const (
	LevelIC             PersonLevel = "ic"
	LevelManager        PersonLevel = "manager"
	LevelDepartmentHead PersonLevel = "department_head"
	LevelExecutive      PersonLevel = "executive"
)
