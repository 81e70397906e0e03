package progress

import "github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"

// RecordProgressDTO is the raw recording request from the HTTP boundary.
// The actual arrives as a string and is coerced (int, float, else text)
// before reaching the service.
type RecordProgressDTO struct {
	Quarter string  `json:"quarter"`
	Actual  string  `json:"actual"`
	Notes   *string `json:"notes"`
	Blocker *string `json:"blocker"`
}

type RecordProgressResponse struct {
	Outcome whygo.Outcome `json:"outcome"`
	Quarter whygo.Quarter `json:"quarter"`
	Target  *whygo.Value  `json:"target"`
	Actual  *whygo.Value  `json:"actual"`
	Status  *whygo.Status `json:"status"`
}

type QuarterSnapshot struct {
	Target *whygo.Value  `json:"target"`
	Actual *whygo.Value  `json:"actual"`
	Status *whygo.Status `json:"status"`
}

type QuarterlyStatus struct {
	Q1 QuarterSnapshot `json:"Q1"`
	Q2 QuarterSnapshot `json:"Q2"`
	Q3 QuarterSnapshot `json:"Q3"`
	Q4 QuarterSnapshot `json:"Q4"`
}

type OutcomeHistory struct {
	Outcome         whygo.Outcome    `json:"outcome"`
	Updates         []ProgressUpdate `json:"updates"`
	QuarterlyStatus QuarterlyStatus  `json:"quarterly_status"`
}
