package whygo

import "fmt"

const (
	maxActiveGoalsPerPerson = 3
	minOutcomesPerGoal      = 2
	maxOutcomesPerGoal      = 3
)

// Validator enforces the WhyGO framework rules on goal creation and
// approval. Failures come back as human-readable messages, one per broken
// rule, so a form can show all of them at once.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

// ValidateIndividualGoal checks every framework rule and returns the list of
// violations; an empty list means the goal is acceptable.
//
// Rules: at most 3 non-archived goals per person, the goal must ladder up to
// department goals in the person's own department, 2-3 outcomes, and every
// outcome needs an owner, a description, an annual target and at least one
// quarterly target.
func (v *Validator) ValidateIndividualGoal(goal *IndividualWhyGO) []string {
	var errors []string

	existing := v.repo.GetIndividualGoalsByPerson(goal.PersonID)
	activeCount := 0
	for _, g := range existing {
		if g.Status == GoalStatusArchived {
			continue
		}
		if g.ID == goal.ID {
			// Updating an existing goal does not count against the limit.
			continue
		}
		activeCount++
	}
	if activeCount >= maxActiveGoalsPerPerson {
		errors = append(errors, "Maximum 3 goals per person. Archive existing goals first.")
	}

	if len(goal.ParentGoalIDs) == 0 {
		errors = append(errors, "Goal must connect to at least one department goal (no orphan goals).")
	} else if person, ok := v.repo.GetPerson(goal.PersonID); ok {
		deptGoals := v.repo.GetDepartmentGoalsByDepartment(person.DepartmentID)
		valid := make(map[string]bool, len(deptGoals))
		for _, g := range deptGoals {
			valid[g.ID] = true
		}
		var invalid []string
		for _, pid := range goal.ParentGoalIDs {
			if !valid[pid] {
				invalid = append(invalid, pid)
			}
		}
		if len(invalid) > 0 {
			errors = append(errors, fmt.Sprintf("Invalid parent goal IDs: %v. Parent goals must be from your department.", invalid))
		}
	} else {
		errors = append(errors, "Person not found.")
	}

	if len(goal.Outcomes) < minOutcomesPerGoal {
		errors = append(errors, "Goal must have at least 2 measurable outcomes.")
	}
	if len(goal.Outcomes) > maxOutcomesPerGoal {
		errors = append(errors, "Goal should have no more than 3 outcomes.")
	}

	for idx, outcome := range goal.Outcomes {
		prefix := fmt.Sprintf("Outcome %d", idx+1)

		if outcome.OwnerID == "" {
			errors = append(errors, fmt.Sprintf("%s (%q) must have an owner.", prefix, outcome.Description))
		}
		if outcome.Description == "" {
			errors = append(errors, fmt.Sprintf("%s must have a description.", prefix))
		}
		if outcome.TargetAnnual == nil {
			errors = append(errors, fmt.Sprintf("%s (%q) must have an annual target.", prefix, outcome.Description))
		}

		hasQuarterlyTarget := false
		for _, t := range outcome.Targets {
			if t != nil {
				hasQuarterlyTarget = true
				break
			}
		}
		if !hasQuarterlyTarget {
			errors = append(errors, fmt.Sprintf("%s (%q) must have at least one quarterly target.", prefix, outcome.Description))
		}
	}

	return errors
}

// CanApprove reports whether approverID may approve the given individual
// goal: executives approve anything, a direct manager approves their
// reports' goals, and a department head approves goals in their department.
func (v *Validator) CanApprove(approverID, goalID string) (bool, string) {
	approver, ok := v.repo.GetPerson(approverID)
	if !ok {
		return false, "Approver not found"
	}

	var goal *IndividualWhyGO
	for _, g := range v.repo.GetAllIndividualGoals() {
		if g.ID == goalID {
			goalCopy := g
			goal = &goalCopy
			break
		}
	}
	if goal == nil {
		return false, "Goal not found"
	}

	if approver.Level == LevelExecutive {
		return true, ""
	}

	owner, ok := v.repo.GetPerson(goal.PersonID)
	if !ok {
		return false, "Goal owner not found"
	}

	if owner.ManagerID != nil && *owner.ManagerID == approverID {
		return true, ""
	}
	if approver.Level == LevelDepartmentHead && approver.DepartmentID == owner.DepartmentID {
		return true, ""
	}

	return false, "Only executives, the direct manager, or the department head can approve this goal"
}
