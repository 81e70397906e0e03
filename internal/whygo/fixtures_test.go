package whygo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// seedFixtures writes a small but complete WhyGO dataset into dir: one
// company goal, one department goal, two individual goals (one archived),
// four people and two departments.
func seedFixtures(t *testing.T, dir string) {
	t.Helper()

	company := []CompanyWhyGO{
		{
			ID:         "cg_north_star",
			Level:      "company",
			Why:        "Prove the studio model with paying clients",
			Goal:       "Sign 20 retained clients in FY2026",
			Status:     GoalStatusApproved,
			OwnerID:    "person_luke",
			FiscalYear: 2026,
			Outcomes: []Outcome{
				{
					ID:           "cg_1_o1",
					GoalID:       "cg_north_star",
					Description:  "Signed retained clients",
					MetricType:   MetricNumber,
					OwnerID:      "person_luke",
					TargetAnnual: Num(20),
					Targets:      [4]*Value{Num(5), Num(10), Num(15), Num(20)},
				},
				{
					ID:           "cg_1_o2",
					GoalID:       "cg_north_star",
					Description:  "Platform MVP milestone",
					MetricType:   MetricMilestone,
					OwnerID:      "person_dana",
					TargetAnnual: Text("GA launch"),
					Targets:      [4]*Value{Text("MVP live"), nil, nil, Text("GA launch")},
				},
			},
			CreatedAt: "2026-01-05T09:00:00Z",
			UpdatedAt: "2026-01-05T09:00:00Z",
		},
	}

	department := []DepartmentWhyGO{
		{
			ID:            "dg_content_pipeline",
			Level:         "department",
			DepartmentID:  "dept_content",
			ParentGoalIDs: []string{"cg_north_star"},
			Why:           "Client retention depends on publishing cadence",
			Goal:          "Ship 120 client videos in FY2026",
			Status:        GoalStatusApproved,
			FiscalYear:    2026,
			Outcomes: []Outcome{
				{
					ID:           "dg_1_o1",
					GoalID:       "dg_content_pipeline",
					Description:  "Videos delivered",
					MetricType:   MetricNumber,
					OwnerID:      "person_dana",
					TargetAnnual: Num(120),
					Targets:      [4]*Value{Num(30), Num(60), Num(90), Num(120)},
				},
			},
		},
	}

	individual := []IndividualWhyGO{
		{
			ID:            "ig_sam_editing",
			Level:         "individual",
			PersonID:      "person_sam",
			ParentGoalIDs: []string{"dg_content_pipeline"},
			Why:           "Faster turnaround keeps clients publishing weekly",
			Goal:          "Cut average edit turnaround to 48 hours",
			Status:        GoalStatusApproved,
			FiscalYear:    2026,
			Outcomes: []Outcome{
				{
					ID:           "ig_1_o1",
					GoalID:       "ig_sam_editing",
					Description:  "Average turnaround hours",
					MetricType:   MetricNumber,
					OwnerID:      "person_sam",
					TargetAnnual: Num(48),
					Targets:      [4]*Value{Num(72), Num(60), Num(54), Num(48)},
				},
				{
					ID:           "ig_1_o2",
					GoalID:       "ig_sam_editing",
					Description:  "Editing checklist adopted",
					MetricType:   MetricBoolean,
					OwnerID:      "person_sam",
					TargetAnnual: Text("true"),
					Targets:      [4]*Value{Text("true"), nil, nil, nil},
				},
			},
		},
		{
			ID:            "ig_sam_retired",
			Level:         "individual",
			PersonID:      "person_sam",
			ParentGoalIDs: []string{"dg_content_pipeline"},
			Why:           "Superseded by the editing goal",
			Goal:          "Old throughput goal",
			Status:        GoalStatusArchived,
			FiscalYear:    2026,
			Outcomes: []Outcome{
				{
					ID:           "ig_old_o1",
					GoalID:       "ig_sam_retired",
					Description:  "Videos edited",
					MetricType:   MetricNumber,
					OwnerID:      "person_sam",
					TargetAnnual: Num(200),
					Targets:      [4]*Value{Num(50), nil, nil, nil},
				},
			},
		},
	}

	people := []Person{
		{
			ID:           "person_luke",
			Name:         "Luke Peterson",
			Title:        "CEO",
			DepartmentID: "dept_exec",
			Level:        LevelExecutive,
			Email:        "luke@kartel.example",
		},
		{
			ID:           "person_head",
			Name:         "Priya Shah",
			Title:        "Head of Content",
			DepartmentID: "dept_content",
			ManagerID:    strPtr("person_luke"),
			Level:        LevelDepartmentHead,
			Email:        "priya@kartel.example",
		},
		{
			ID:           "person_dana",
			Name:         "Dana Ortiz",
			Title:        "Content Lead",
			DepartmentID: "dept_content",
			ManagerID:    strPtr("person_head"),
			Level:        LevelManager,
			Email:        "dana@kartel.example",
		},
		{
			ID:           "person_sam",
			Name:         "Sam Reyes",
			Title:        "Video Editor",
			DepartmentID: "dept_content",
			ManagerID:    strPtr("person_dana"),
			Level:        LevelIC,
			Email:        "sam@kartel.example",
		},
	}

	departments := []Department{
		{
			ID:                    "dept_exec",
			Name:                  "Executive",
			HeadID:                "person_luke",
			PrimaryCompanyGoalIDs: []string{"cg_north_star"},
		},
		{
			ID:                    "dept_content",
			Name:                  "Content",
			HeadID:                "person_head",
			PrimaryCompanyGoalIDs: []string{"cg_north_star"},
			ReportsTo:             strPtr("dept_exec"),
		},
	}

	meta := map[string]any{"version": "1.0", "last_updated": "2026-01-05T09:00:00Z"}
	writeFixture(t, dir, companyFileName, companyFile{Metadata: meta, CompanyGoals: company})
	writeFixture(t, dir, departmentFileName, departmentFile{Metadata: meta, DepartmentGoals: department})
	writeFixture(t, dir, individualFileName, individualFile{Metadata: meta, IndividualGoals: individual})
	writeFixture(t, dir, employeesFileName, employeesFile{Metadata: meta, Employees: people})
	writeFixture(t, dir, departmentsFileName, departmentsFile{Metadata: meta, Departments: departments})
}

func writeFixture(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	dir := t.TempDir()
	seedFixtures(t, dir)
	repo, err := NewJSONRepository(dir)
	require.NoError(t, err)
	return repo
}
