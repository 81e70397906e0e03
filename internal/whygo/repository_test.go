package whygo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRepositoryLoads(t *testing.T) {
	repo := newTestRepo(t)

	assert.Len(t, repo.GetAllCompanyGoals(), 1)
	assert.Len(t, repo.GetAllDepartmentGoals(), 1)
	assert.Len(t, repo.GetAllIndividualGoals(), 2)
	assert.Len(t, repo.GetAllPeople(), 4)
	assert.Len(t, repo.GetAllDepartments(), 2)
}

func TestNewJSONRepositoryMissingFile(t *testing.T) {
	dir := t.TempDir()
	seedFixtures(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, employeesFileName)))

	_, err := NewJSONRepository(dir)
	assert.Error(t, err)
}

func TestNewJSONRepositoryDuplicateOutcomeID(t *testing.T) {
	dir := t.TempDir()
	seedFixtures(t, dir)

	// Give a department outcome the same id as a company outcome.
	var df departmentFile
	readFixture(t, dir, departmentFileName, &df)
	df.DepartmentGoals[0].Outcomes[0].ID = "cg_1_o1"
	writeFixture(t, dir, departmentFileName, df)

	_, err := NewJSONRepository(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate outcome id")
}

func TestGetOutcomeAcrossTiers(t *testing.T) {
	repo := newTestRepo(t)

	for _, id := range []string{"cg_1_o1", "dg_1_o1", "ig_1_o1"} {
		outcome, ok := repo.GetOutcome(id)
		require.True(t, ok, "outcome %s", id)
		assert.Equal(t, id, outcome.ID)
	}

	_, ok := repo.GetOutcome("nope")
	assert.False(t, ok)
}

func TestGetOutcomeReturnsCopy(t *testing.T) {
	repo := newTestRepo(t)

	outcome, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	outcome.SetActual(Q1, Num(999))

	again, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	assert.Nil(t, again.ActualFor(Q1))
}

func TestParentGoalStatus(t *testing.T) {
	repo := newTestRepo(t)

	status, ok := repo.ParentGoalStatus("ig_old_o1")
	require.True(t, ok)
	assert.Equal(t, GoalStatusArchived, status)

	status, ok = repo.ParentGoalStatus("cg_1_o1")
	require.True(t, ok)
	assert.Equal(t, GoalStatusApproved, status)

	_, ok = repo.ParentGoalStatus("nope")
	assert.False(t, ok)
}

func TestUpdateOutcome(t *testing.T) {
	repo := newTestRepo(t)

	outcome, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	outcome.SetActual(Q1, Num(5))
	outcome.SetStatus(Q1, StatusOnPace)

	require.True(t, repo.UpdateOutcome(outcome))

	stored, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	assert.True(t, stored.ActualFor(Q1).Equal(Num(5)))
	assert.Equal(t, StatusOnPace, stored.StatusFor(Q1))

	// Parent goal gets a fresh updated_at stamp.
	goal, ok := repo.GetCompanyGoal("cg_north_star")
	require.True(t, ok)
	assert.NotEqual(t, "2026-01-05T09:00:00Z", goal.UpdatedAt)
}

func TestUpdateOutcomeUnknown(t *testing.T) {
	repo := newTestRepo(t)
	assert.False(t, repo.UpdateOutcome(&Outcome{ID: "nope"}))
}

func TestSaveAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	seedFixtures(t, dir)
	repo, err := NewJSONRepository(dir)
	require.NoError(t, err)

	outcome, ok := repo.GetOutcome("dg_1_o1")
	require.True(t, ok)
	outcome.SetActual(Q1, Num(28))
	outcome.SetStatus(Q1, StatusSlightlyOff)
	require.True(t, repo.UpdateOutcome(outcome))
	require.NoError(t, repo.SaveAll())

	reloaded, err := NewJSONRepository(dir)
	require.NoError(t, err)

	stored, ok := reloaded.GetOutcome("dg_1_o1")
	require.True(t, ok)
	assert.True(t, stored.ActualFor(Q1).Equal(Num(28)))
	assert.Equal(t, StatusSlightlyOff, stored.StatusFor(Q1))

	// Metadata last_updated is restamped on save.
	var df departmentFile
	readFixture(t, dir, departmentFileName, &df)
	assert.NotEqual(t, "2026-01-05T09:00:00Z", df.Metadata["last_updated"])
}

func TestSaveAllFailureKeepsCanonicalState(t *testing.T) {
	dir := t.TempDir()
	seedFixtures(t, dir)
	repo, err := NewJSONRepository(dir)
	require.NoError(t, err)

	outcome, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	outcome.SetActual(Q1, Num(4))
	require.True(t, repo.UpdateOutcome(outcome))

	// Remove the directory so the staged write cannot create temp files.
	require.NoError(t, os.RemoveAll(dir))
	require.Error(t, repo.SaveAll())

	// The pending mutation was discarded; reads see the loaded state again.
	stored, ok := repo.GetOutcome("cg_1_o1")
	require.True(t, ok)
	assert.Nil(t, stored.ActualFor(Q1))
}

func TestCreateIndividualGoal(t *testing.T) {
	repo := newTestRepo(t)

	goal := &IndividualWhyGO{
		ID:            "ig_dana_growth",
		Level:         "individual",
		PersonID:      "person_dana",
		ParentGoalIDs: []string{"dg_content_pipeline"},
		Why:           "Grow the client channel audience",
		Goal:          "Double average views per video",
		Status:        GoalStatusDraft,
		FiscalYear:    2026,
		Outcomes: []Outcome{
			{ID: "ig_2_o1", GoalID: "ig_dana_growth", Description: "Average views", MetricType: MetricNumber, OwnerID: "person_dana", TargetAnnual: Num(10000), Targets: [4]*Value{Num(4000), nil, nil, nil}},
			{ID: "ig_2_o2", GoalID: "ig_dana_growth", Description: "Retention rate", MetricType: MetricPercentage, OwnerID: "person_dana", TargetAnnual: Num(40), Targets: [4]*Value{Num(30), nil, nil, nil}},
		},
	}

	require.True(t, repo.CreateIndividualGoal(goal))

	// Duplicate goal id is rejected.
	assert.False(t, repo.CreateIndividualGoal(goal))

	// The new goal's outcomes are reachable through the index.
	_, ok := repo.GetOutcome("ig_2_o1")
	assert.True(t, ok)

	goals := repo.GetIndividualGoalsByPerson("person_dana")
	require.Len(t, goals, 1)
	assert.NotEmpty(t, goals[0].CreatedAt)
}

func TestCreateIndividualGoalDuplicateOutcome(t *testing.T) {
	repo := newTestRepo(t)

	goal := &IndividualWhyGO{
		ID:       "ig_clash",
		PersonID: "person_dana",
		Outcomes: []Outcome{{ID: "cg_1_o1"}},
	}
	assert.False(t, repo.CreateIndividualGoal(goal))
}

func TestUpdateIndividualGoal(t *testing.T) {
	repo := newTestRepo(t)

	goals := repo.GetIndividualGoalsByPerson("person_sam")
	var goal *IndividualWhyGO
	for i := range goals {
		if goals[i].ID == "ig_sam_editing" {
			goal = &goals[i]
		}
	}
	require.NotNil(t, goal)

	goal.Status = GoalStatusArchived
	require.True(t, repo.UpdateIndividualGoal(goal))

	status, ok := repo.ParentGoalStatus("ig_1_o1")
	require.True(t, ok)
	assert.Equal(t, GoalStatusArchived, status)

	assert.False(t, repo.UpdateIndividualGoal(&IndividualWhyGO{ID: "nope"}))
}

func TestGetGoalsByStatus(t *testing.T) {
	repo := newTestRepo(t)

	archived := repo.GetGoalsByStatus(GoalStatusArchived)
	assert.Empty(t, archived.Company)
	assert.Empty(t, archived.Department)
	require.Len(t, archived.Individual, 1)
	assert.Equal(t, "ig_sam_retired", archived.Individual[0].ID)

	approved := repo.GetGoalsByStatus(GoalStatusApproved)
	assert.Len(t, approved.Company, 1)
	assert.Len(t, approved.Department, 1)
	assert.Len(t, approved.Individual, 1)
}

func TestPeopleLookups(t *testing.T) {
	repo := newTestRepo(t)

	person, ok := repo.GetPerson("person_sam")
	require.True(t, ok)
	assert.Equal(t, "Sam Reyes", person.Name)

	person, ok = repo.GetPersonByEmail("DANA@kartel.example")
	require.True(t, ok)
	assert.Equal(t, "person_dana", person.ID)

	_, ok = repo.GetPersonByEmail("")
	assert.False(t, ok)

	assert.Len(t, repo.GetPeopleByDepartment("dept_content"), 3)
}

func TestUpdatePerson(t *testing.T) {
	repo := newTestRepo(t)

	person, ok := repo.GetPerson("person_sam")
	require.True(t, ok)
	person.Timezone = "America/Los_Angeles"
	require.True(t, repo.UpdatePerson(person))

	stored, ok := repo.GetPerson("person_sam")
	require.True(t, ok)
	assert.Equal(t, "America/Los_Angeles", stored.Timezone)

	assert.False(t, repo.UpdatePerson(&Person{ID: "nope"}))
}

func TestDepartmentLookups(t *testing.T) {
	repo := newTestRepo(t)

	dept, ok := repo.GetDepartment("dept_content")
	require.True(t, ok)
	assert.Equal(t, "person_head", dept.HeadID)

	_, ok = repo.GetDepartment("nope")
	assert.False(t, ok)
}

func readFixture(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
