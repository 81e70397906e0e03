package whygo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
)

var (
	ErrOutcomeNotFound = errors.New("outcome not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrGoalExists      = errors.New("goal already exists")
	ErrApprovalDenied  = errors.New("approval denied")
)

// ValidationError carries the full list of broken framework rules so the
// boundary can show every message, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "goal validation failed: " + strings.Join(e.Messages, "; ")
}

// Service is the read-side dashboard/query surface plus the goal-creation
// and approval operations. Progress recording lives in the progress package.
type Service interface {
	CompanyDashboard() *CompanyDashboard
	DepartmentDashboard(deptID string) *DepartmentDashboard
	OutcomeDetails(outcomeID string) (*OutcomeDetails, error)
	OutcomesForPerson(personID string) []Outcome
	ListDepartments() []Department
	IndividualGoalsForPerson(personID string) []IndividualWhyGO
	CreateIndividualGoal(ctx context.Context, dto CreateIndividualGoalDTO) (*IndividualWhyGO, error)
	ApproveIndividualGoal(ctx context.Context, approverID, goalID string) (*IndividualWhyGO, error)
}

type service struct {
	repo      Repository
	validator *Validator
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validator: NewValidator(repo)}
}

func (s *service) CompanyDashboard() *CompanyDashboard {
	goals := s.repo.GetAllCompanyGoals()
	return &CompanyDashboard{
		Goals:   goals,
		Summary: summarizeCompany(goals),
	}
}

func (s *service) DepartmentDashboard(deptID string) *DepartmentDashboard {
	goals := s.repo.GetDepartmentGoalsByDepartment(deptID)
	return &DepartmentDashboard{
		DepartmentID: deptID,
		Goals:        goals,
		Summary:      summarizeDepartment(goals),
	}
}

func (s *service) OutcomeDetails(outcomeID string) (*OutcomeDetails, error) {
	outcome, ok := s.repo.GetOutcome(outcomeID)
	if !ok {
		return nil, ErrOutcomeNotFound
	}

	details := &OutcomeDetails{
		ID:           outcome.ID,
		Description:  outcome.Description,
		MetricType:   outcome.MetricType,
		OwnerID:      outcome.OwnerID,
		AnnualTarget: outcome.TargetAnnual,
	}
	quarters := [4]*QuarterDetail{&details.Q1, &details.Q2, &details.Q3, &details.Q4}
	for i, q := range AllQuarters {
		target := outcome.TargetFor(q)
		actual := outcome.ActualFor(q)
		*quarters[i] = QuarterDetail{
			Target:     target,
			Actual:     actual,
			Status:     statusPtr(outcome.StatusFor(q)),
			Percentage: CompletionPercentage(outcome.MetricType, target, actual),
		}
	}
	return details, nil
}

// OutcomesForPerson scans every goal tier and returns the outcomes the
// person owns, in tier order.
func (s *service) OutcomesForPerson(personID string) []Outcome {
	var outcomes []Outcome

	for _, g := range s.repo.GetAllCompanyGoals() {
		for _, o := range g.Outcomes {
			if o.OwnerID == personID {
				outcomes = append(outcomes, o)
			}
		}
	}
	for _, g := range s.repo.GetAllDepartmentGoals() {
		for _, o := range g.Outcomes {
			if o.OwnerID == personID {
				outcomes = append(outcomes, o)
			}
		}
	}
	for _, g := range s.repo.GetAllIndividualGoals() {
		for _, o := range g.Outcomes {
			if o.OwnerID == personID {
				outcomes = append(outcomes, o)
			}
		}
	}
	return outcomes
}

func (s *service) ListDepartments() []Department {
	return s.repo.GetAllDepartments()
}

func (s *service) IndividualGoalsForPerson(personID string) []IndividualWhyGO {
	return s.repo.GetIndividualGoalsByPerson(personID)
}

func (s *service) CreateIndividualGoal(ctx context.Context, dto CreateIndividualGoalDTO) (*IndividualWhyGO, error) {
	log := config.WithContext(ctx)

	goal := dto.ToEntity()
	if messages := s.validator.ValidateIndividualGoal(goal); len(messages) > 0 {
		log.WithField("goal_id", goal.ID).Warn("Individual goal failed validation")
		return nil, &ValidationError{Messages: messages}
	}

	if !s.repo.CreateIndividualGoal(goal) {
		return nil, ErrGoalExists
	}
	if err := s.repo.SaveAll(); err != nil {
		log.WithError(err).Error("Failed to persist new individual goal")
		return nil, err
	}

	created, _ := s.findIndividualGoal(goal.ID)
	log.WithField("goal_id", goal.ID).Info("Individual goal created")
	return created, nil
}

func (s *service) ApproveIndividualGoal(ctx context.Context, approverID, goalID string) (*IndividualWhyGO, error) {
	log := config.WithContext(ctx)

	allowed, reason := s.validator.CanApprove(approverID, goalID)
	if !allowed {
		log.WithField("goal_id", goalID).Warnf("Approval denied: %s", reason)
		return nil, fmt.Errorf("%w: %s", ErrApprovalDenied, reason)
	}

	goal, ok := s.findIndividualGoal(goalID)
	if !ok {
		return nil, ErrGoalNotFound
	}

	goal.Status = GoalStatusApproved
	approver := approverID
	goal.ApprovedBy = &approver

	if !s.repo.UpdateIndividualGoal(goal) {
		return nil, ErrGoalNotFound
	}
	if err := s.repo.SaveAll(); err != nil {
		log.WithError(err).Error("Failed to persist goal approval")
		return nil, err
	}

	log.WithField("goal_id", goalID).Info("Individual goal approved")
	approved, _ := s.findIndividualGoal(goalID)
	return approved, nil
}

func (s *service) findIndividualGoal(goalID string) (*IndividualWhyGO, bool) {
	for _, g := range s.repo.GetAllIndividualGoals() {
		if g.ID == goalID {
			goal := g
			return &goal, true
		}
	}
	return nil, false
}

func summarizeCompany(goals []CompanyWhyGO) DashboardSummary {
	summary := DashboardSummary{TotalGoals: len(goals)}
	for _, g := range goals {
		tallyOutcomes(&summary, g.Outcomes)
	}
	return summary
}

func summarizeDepartment(goals []DepartmentWhyGO) DashboardSummary {
	summary := DashboardSummary{TotalGoals: len(goals)}
	for _, g := range goals {
		tallyOutcomes(&summary, g.Outcomes)
	}
	return summary
}

func tallyOutcomes(summary *DashboardSummary, outcomes []Outcome) {
	summary.TotalOutcomes += len(outcomes)
	for _, o := range outcomes {
		if o.ActualFor(Q1) != nil {
			summary.OutcomesTrackedQ1++
		}
		switch o.StatusFor(Q1) {
		case StatusOnPace:
			summary.Q1Status.OnPace++
		case StatusSlightlyOff:
			summary.Q1Status.SlightlyOff++
		case StatusOffPace:
			summary.Q1Status.OffPace++
		default:
			summary.Q1Status.NotRecorded++
		}
	}
}
