package whygo

import "encoding/json"

// Outcome is a single measurable target/actual pair tracked per quarter,
// owned by exactly one WhyGO. The quarterly fields live in fixed four-slot
// arrays indexed by Quarter; the wire format keeps the flat
// target_q1..status_q4 names.
type Outcome struct {
	ID          string
	GoalID      string
	Description string
	MetricType  MetricType
	OwnerID     string

	TargetAnnual *Value
	Targets      [4]*Value
	Actuals      [4]*Value
	Statuses     [4]Status
}

func (o *Outcome) TargetFor(q Quarter) *Value { return o.Targets[q.Index()] }
func (o *Outcome) ActualFor(q Quarter) *Value { return o.Actuals[q.Index()] }
func (o *Outcome) StatusFor(q Quarter) Status { return o.Statuses[q.Index()] }

func (o *Outcome) SetActual(q Quarter, v *Value) { o.Actuals[q.Index()] = v }
func (o *Outcome) SetStatus(q Quarter, s Status) { o.Statuses[q.Index()] = s }

func (o *Outcome) Clone() *Outcome {
	c := *o
	c.TargetAnnual = o.TargetAnnual.Clone()
	for i := range o.Targets {
		c.Targets[i] = o.Targets[i].Clone()
		c.Actuals[i] = o.Actuals[i].Clone()
	}
	return &c
}

type outcomeJSON struct {
	ID           string     `json:"id"`
	GoalID       string     `json:"goal_id"`
	Description  string     `json:"description"`
	MetricType   MetricType `json:"metric_type"`
	OwnerID      string     `json:"owner_id"`
	TargetAnnual *Value     `json:"target_annual"`
	TargetQ1     *Value     `json:"target_q1"`
	TargetQ2     *Value     `json:"target_q2"`
	TargetQ3     *Value     `json:"target_q3"`
	TargetQ4     *Value     `json:"target_q4"`
	ActualQ1     *Value     `json:"actual_q1"`
	ActualQ2     *Value     `json:"actual_q2"`
	ActualQ3     *Value     `json:"actual_q3"`
	ActualQ4     *Value     `json:"actual_q4"`
	StatusQ1     *Status    `json:"status_q1"`
	StatusQ2     *Status    `json:"status_q2"`
	StatusQ3     *Status    `json:"status_q3"`
	StatusQ4     *Status    `json:"status_q4"`
}

func statusPtr(s Status) *Status {
	if s == StatusNone {
		return nil
	}
	return &s
}

func statusVal(p *Status) Status {
	if p == nil {
		return StatusNone
	}
	return *p
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{
		ID:           o.ID,
		GoalID:       o.GoalID,
		Description:  o.Description,
		MetricType:   o.MetricType,
		OwnerID:      o.OwnerID,
		TargetAnnual: o.TargetAnnual,
		TargetQ1:     o.Targets[0],
		TargetQ2:     o.Targets[1],
		TargetQ3:     o.Targets[2],
		TargetQ4:     o.Targets[3],
		ActualQ1:     o.Actuals[0],
		ActualQ2:     o.Actuals[1],
		ActualQ3:     o.Actuals[2],
		ActualQ4:     o.Actuals[3],
		StatusQ1:     statusPtr(o.Statuses[0]),
		StatusQ2:     statusPtr(o.Statuses[1]),
		StatusQ3:     statusPtr(o.Statuses[2]),
		StatusQ4:     statusPtr(o.Statuses[3]),
	})
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var raw outcomeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.ID = raw.ID
	o.GoalID = raw.GoalID
	o.Description = raw.Description
	o.MetricType = raw.MetricType
	o.OwnerID = raw.OwnerID
	o.TargetAnnual = raw.TargetAnnual
	o.Targets = [4]*Value{raw.TargetQ1, raw.TargetQ2, raw.TargetQ3, raw.TargetQ4}
	o.Actuals = [4]*Value{raw.ActualQ1, raw.ActualQ2, raw.ActualQ3, raw.ActualQ4}
	o.Statuses = [4]Status{statusVal(raw.StatusQ1), statusVal(raw.StatusQ2), statusVal(raw.StatusQ3), statusVal(raw.StatusQ4)}
	return nil
}

// CompanyWhyGO is a company-tier goal: why narrative, goal statement and the
// outcomes it exclusively owns.
type CompanyWhyGO struct {
	ID         string     `json:"id"`
	Level      string     `json:"level"`
	Why        string     `json:"why"`
	Goal       string     `json:"goal"`
	Status     GoalStatus `json:"status"`
	OwnerID    string     `json:"owner_id"`
	FiscalYear int        `json:"fiscal_year"`
	Outcomes   []Outcome  `json:"outcomes"`
	CreatedAt  string     `json:"created_at,omitempty"`
	UpdatedAt  string     `json:"updated_at,omitempty"`
}

func (g *CompanyWhyGO) Clone() *CompanyWhyGO {
	c := *g
	c.Outcomes = cloneOutcomes(g.Outcomes)
	return &c
}

// DepartmentWhyGO is a department-tier goal laddering up to one or more
// company goals via parent_goal_ids.
type DepartmentWhyGO struct {
	ID            string     `json:"id"`
	Level         string     `json:"level"`
	DepartmentID  string     `json:"department_id"`
	ParentGoalIDs []string   `json:"parent_goal_ids"`
	Why           string     `json:"why"`
	Goal          string     `json:"goal"`
	Status        GoalStatus `json:"status"`
	ApprovedBy    *string    `json:"approved_by"`
	FiscalYear    int        `json:"fiscal_year"`
	Outcomes      []Outcome  `json:"outcomes"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
}

func (g *DepartmentWhyGO) Clone() *DepartmentWhyGO {
	c := *g
	c.ParentGoalIDs = append([]string(nil), g.ParentGoalIDs...)
	c.Outcomes = cloneOutcomes(g.Outcomes)
	return &c
}

// IndividualWhyGO is a person-tier goal laddering up to department goals.
type IndividualWhyGO struct {
	ID            string     `json:"id"`
	Level         string     `json:"level"`
	PersonID      string     `json:"person_id"`
	ParentGoalIDs []string   `json:"parent_goal_ids"`
	Why           string     `json:"why"`
	Goal          string     `json:"goal"`
	Status        GoalStatus `json:"status"`
	ApprovedBy    *string    `json:"approved_by"`
	FiscalYear    int        `json:"fiscal_year"`
	Outcomes      []Outcome  `json:"outcomes"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
}

func (g *IndividualWhyGO) Clone() *IndividualWhyGO {
	c := *g
	c.ParentGoalIDs = append([]string(nil), g.ParentGoalIDs...)
	c.Outcomes = cloneOutcomes(g.Outcomes)
	return &c
}

func cloneOutcomes(outcomes []Outcome) []Outcome {
	if outcomes == nil {
		return nil
	}
	cloned := make([]Outcome, len(outcomes))
	for i := range outcomes {
		cloned[i] = *outcomes[i].Clone()
	}
	return cloned
}

type Person struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Title                 string      `json:"title"`
	DepartmentID          string      `json:"department_id"`
	ManagerID             *string     `json:"manager_id"`
	Level                 PersonLevel `json:"level"`
	EmploymentType        string      `json:"employment_type,omitempty"`
	Status                string      `json:"status,omitempty"`
	Email                 string      `json:"email,omitempty"`
	OnboardingStatus      string      `json:"onboarding_status,omitempty"`
	OnboardingStartedAt   string      `json:"onboarding_started_at,omitempty"`
	OnboardingCompletedAt string      `json:"onboarding_completed_at,omitempty"`
	LastLogin             string      `json:"last_login,omitempty"`
	Timezone              string      `json:"timezone,omitempty"`
	NotificationEnabled   bool        `json:"notification_enabled"`
}

func (p *Person) Clone() *Person {
	c := *p
	if p.ManagerID != nil {
		m := *p.ManagerID
		c.ManagerID = &m
	}
	return &c
}

type Department struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	HeadID                  string   `json:"head_id"`
	PrimaryCompanyGoalIDs   []string `json:"primary_company_goal_ids"`
	SecondaryCompanyGoalIDs []string `json:"secondary_company_goal_ids"`
	ReportsTo               *string  `json:"reports_to"`
}

func (d *Department) Clone() *Department {
	c := *d
	c.PrimaryCompanyGoalIDs = append([]string(nil), d.PrimaryCompanyGoalIDs...)
	c.SecondaryCompanyGoalIDs = append([]string(nil), d.SecondaryCompanyGoalIDs...)
	if d.ReportsTo != nil {
		r := *d.ReportsTo
		c.ReportsTo = &r
	}
	return &c
}
