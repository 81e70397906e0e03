package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

// seedFixtures writes a minimal WhyGO dataset plus an empty progress log:
// one company goal with a numeric and a milestone outcome, and one archived
// individual goal.
func seedFixtures(t *testing.T, dir string) {
	t.Helper()

	meta := map[string]any{"version": "1.0", "last_updated": "2026-01-05T09:00:00Z"}

	company := []whygo.CompanyWhyGO{
		{
			ID:         "cg_north_star",
			Level:      "company",
			Why:        "Prove the studio model",
			Goal:       "Sign 20 retained clients",
			Status:     whygo.GoalStatusApproved,
			OwnerID:    "person_luke",
			FiscalYear: 2026,
			Outcomes: []whygo.Outcome{
				{
					ID:           "cg_1_o1",
					GoalID:       "cg_north_star",
					Description:  "Signed retained clients",
					MetricType:   whygo.MetricNumber,
					OwnerID:      "person_luke",
					TargetAnnual: whygo.Num(20),
					Targets:      [4]*whygo.Value{whygo.Num(5), whygo.Num(10), whygo.Num(15), whygo.Num(20)},
				},
				{
					ID:           "cg_1_o2",
					GoalID:       "cg_north_star",
					Description:  "Platform MVP milestone",
					MetricType:   whygo.MetricMilestone,
					OwnerID:      "person_dana",
					TargetAnnual: whygo.Text("GA launch"),
					Targets:      [4]*whygo.Value{whygo.Text("MVP live"), nil, nil, whygo.Text("GA launch")},
				},
			},
			CreatedAt: "2026-01-05T09:00:00Z",
			UpdatedAt: "2026-01-05T09:00:00Z",
		},
	}

	archived := []whygo.IndividualWhyGO{
		{
			ID:            "ig_retired",
			Level:         "individual",
			PersonID:      "person_sam",
			ParentGoalIDs: []string{"dg_content_pipeline"},
			Why:           "Superseded",
			Goal:          "Old goal",
			Status:        whygo.GoalStatusArchived,
			FiscalYear:    2026,
			Outcomes: []whygo.Outcome{
				{
					ID:           "ig_old_o1",
					GoalID:       "ig_retired",
					Description:  "Videos edited",
					MetricType:   whygo.MetricNumber,
					OwnerID:      "person_sam",
					TargetAnnual: whygo.Num(200),
					Targets:      [4]*whygo.Value{whygo.Num(50), nil, nil, nil},
				},
			},
		},
	}

	writeJSONFile(t, dir, "company_whygos.json", map[string]any{"metadata": meta, "company_goals": company})
	writeJSONFile(t, dir, "department_goals.json", map[string]any{"metadata": meta, "department_goals": []whygo.DepartmentWhyGO{}})
	writeJSONFile(t, dir, "individual_goals.json", map[string]any{"metadata": meta, "individual_goals": archived})
	writeJSONFile(t, dir, "employees.json", map[string]any{"metadata": meta, "employees": []whygo.Person{}})
	writeJSONFile(t, dir, "departments.json", map[string]any{"metadata": meta, "departments": []whygo.Department{}})
	writeJSONFile(t, dir, updatesFileName, map[string]any{"metadata": meta, "progress_updates": []ProgressUpdate{}})
}

func writeJSONFile(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func newTestStores(t *testing.T) (whygo.Repository, Repository) {
	t.Helper()
	dir := t.TempDir()
	seedFixtures(t, dir)

	goals, err := whygo.NewJSONRepository(dir)
	require.NoError(t, err)
	updates, err := NewJSONRepository(dir)
	require.NoError(t, err)
	return goals, updates
}
