package whygo

// StatusBuckets is the Q1 status frequency breakdown shown on dashboards.
type StatusBuckets struct {
	OnPace      int `json:"on_pace"`
	SlightlyOff int `json:"slightly_off"`
	OffPace     int `json:"off_pace"`
	NotRecorded int `json:"not_recorded"`
}

type DashboardSummary struct {
	TotalGoals        int           `json:"total_goals"`
	TotalOutcomes     int           `json:"total_outcomes"`
	OutcomesTrackedQ1 int           `json:"outcomes_tracked_q1"`
	Q1Status          StatusBuckets `json:"q1_status"`
}

type CompanyDashboard struct {
	Goals   []CompanyWhyGO   `json:"goals"`
	Summary DashboardSummary `json:"summary"`
}

type DepartmentDashboard struct {
	DepartmentID string            `json:"department_id"`
	Goals        []DepartmentWhyGO `json:"goals"`
	Summary      DashboardSummary  `json:"summary"`
}

type QuarterDetail struct {
	Target     *Value   `json:"target"`
	Actual     *Value   `json:"actual"`
	Status     *Status  `json:"status"`
	Percentage *float64 `json:"percentage"`
}

type OutcomeDetails struct {
	ID           string        `json:"id"`
	Description  string        `json:"description"`
	MetricType   MetricType    `json:"metric_type"`
	OwnerID      string        `json:"owner_id"`
	AnnualTarget *Value        `json:"annual_target"`
	Q1           QuarterDetail `json:"Q1"`
	Q2           QuarterDetail `json:"Q2"`
	Q3           QuarterDetail `json:"Q3"`
	Q4           QuarterDetail `json:"Q4"`
}

type CreateOutcomeDTO struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	MetricType   MetricType `json:"metric_type"`
	OwnerID      string     `json:"owner_id"`
	TargetAnnual *Value     `json:"target_annual"`
	TargetQ1     *Value     `json:"target_q1"`
	TargetQ2     *Value     `json:"target_q2"`
	TargetQ3     *Value     `json:"target_q3"`
	TargetQ4     *Value     `json:"target_q4"`
}

type CreateIndividualGoalDTO struct {
	ID            string             `json:"id"`
	PersonID      string             `json:"person_id"`
	ParentGoalIDs []string           `json:"parent_goal_ids"`
	Why           string             `json:"why"`
	Goal          string             `json:"goal"`
	FiscalYear    int                `json:"fiscal_year"`
	Outcomes      []CreateOutcomeDTO `json:"outcomes"`
}

func (dto CreateIndividualGoalDTO) ToEntity() *IndividualWhyGO {
	goal := &IndividualWhyGO{
		ID:            dto.ID,
		Level:         "individual",
		PersonID:      dto.PersonID,
		ParentGoalIDs: dto.ParentGoalIDs,
		Why:           dto.Why,
		Goal:          dto.Goal,
		Status:        GoalStatusDraft,
		FiscalYear:    dto.FiscalYear,
	}
	for _, o := range dto.Outcomes {
		goal.Outcomes = append(goal.Outcomes, Outcome{
			ID:           o.ID,
			GoalID:       dto.ID,
			Description:  o.Description,
			MetricType:   o.MetricType,
			OwnerID:      o.OwnerID,
			TargetAnnual: o.TargetAnnual,
			Targets:      [4]*Value{o.TargetQ1, o.TargetQ2, o.TargetQ3, o.TargetQ4},
		})
	}
	return goal
}
