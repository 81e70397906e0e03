package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

// ProgressUpdate is one immutable historical fact: who reported what actual
// for which outcome and quarter, and the status that was derived from it.
// The outcome's own quarterly fields hold only the latest value per quarter;
// the update log keeps every report.
type ProgressUpdate struct {
	ID          string        `json:"id"`
	OutcomeID   string        `json:"outcome_id"`
	Quarter     whygo.Quarter `json:"quarter"`
	ActualValue *whygo.Value  `json:"actual_value"`
	Status      *whygo.Status `json:"status"`
	Notes       *string       `json:"notes"`
	Blocker     *string       `json:"blocker"`
	RecordedBy  string        `json:"recorded_by"`
	RecordedAt  string        `json:"recorded_at"`
}

// NewUpdateID builds the update id from outcome, quarter and a
// second-resolution timestamp, e.g. cg_1_o1_q1_update_20260117093045.
// Two records for the same outcome and quarter within one second collide;
// accepted for a single-writer system.
func NewUpdateID(outcomeID string, quarter whygo.Quarter, at time.Time) string {
	return fmt.Sprintf("%s_%s_update_%s", outcomeID, strings.ToLower(string(quarter)), at.Format("20060102150405"))
}
