package whygo

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/storage"
)

const (
	companyFileName     = "company_whygos.json"
	departmentFileName  = "department_goals.json"
	individualFileName  = "individual_goals.json"
	employeesFileName   = "employees.json"
	departmentsFileName = "departments.json"
)

// Repository owns the canonical in-memory WhyGO collections. Everything is
// loaded once at construction; mutations stay in memory until SaveAll.
type Repository interface {
	GetAllCompanyGoals() []CompanyWhyGO
	GetCompanyGoal(id string) (*CompanyWhyGO, bool)
	GetAllDepartmentGoals() []DepartmentWhyGO
	GetDepartmentGoalsByDepartment(deptID string) []DepartmentWhyGO
	GetAllIndividualGoals() []IndividualWhyGO
	GetIndividualGoalsByPerson(personID string) []IndividualWhyGO
	GetGoalsByStatus(status GoalStatus) GoalsByStatus

	GetOutcome(id string) (*Outcome, bool)
	ParentGoalStatus(outcomeID string) (GoalStatus, bool)
	UpdateOutcome(outcome *Outcome) bool

	CreateIndividualGoal(goal *IndividualWhyGO) bool
	UpdateIndividualGoal(goal *IndividualWhyGO) bool

	GetPerson(id string) (*Person, bool)
	GetPersonByEmail(email string) (*Person, bool)
	GetAllPeople() []Person
	GetPeopleByDepartment(deptID string) []Person
	UpdatePerson(person *Person) bool

	GetDepartment(id string) (*Department, bool)
	GetAllDepartments() []Department

	SaveAll() error
}

type GoalsByStatus struct {
	Company    []CompanyWhyGO    `json:"company"`
	Department []DepartmentWhyGO `json:"department"`
	Individual []IndividualWhyGO `json:"individual"`
}

type goalTier int

const (
	tierCompany goalTier = iota
	tierDepartment
	tierIndividual
)

type outcomeRef struct {
	tier    goalTier
	goal    int
	outcome int
}

type companyFile struct {
	Metadata     map[string]any `json:"metadata"`
	CompanyGoals []CompanyWhyGO `json:"company_goals"`
}

type departmentFile struct {
	Metadata        map[string]any    `json:"metadata"`
	DepartmentGoals []DepartmentWhyGO `json:"department_goals"`
}

type individualFile struct {
	Metadata        map[string]any    `json:"metadata"`
	IndividualGoals []IndividualWhyGO `json:"individual_goals"`
}

type employeesFile struct {
	Metadata  map[string]any `json:"metadata"`
	Employees []Person       `json:"employees"`
}

type departmentsFile struct {
	Metadata    map[string]any `json:"metadata"`
	Departments []Department   `json:"departments"`
}

// dataset is one self-consistent snapshot of every collection plus the
// outcome index spanning all three tiers.
type dataset struct {
	company    []CompanyWhyGO
	department []DepartmentWhyGO
	individual []IndividualWhyGO
	people     []Person
	depts      []Department

	companyMeta    map[string]any
	departmentMeta map[string]any
	individualMeta map[string]any
	employeesMeta  map[string]any

	index map[string]outcomeRef
}

func (ds *dataset) buildIndex() error {
	ds.index = make(map[string]outcomeRef)

	add := func(id string, ref outcomeRef) error {
		if _, exists := ds.index[id]; exists {
			return fmt.Errorf("duplicate outcome id %q across goal tiers", id)
		}
		ds.index[id] = ref
		return nil
	}

	for gi, g := range ds.company {
		for oi, o := range g.Outcomes {
			if err := add(o.ID, outcomeRef{tierCompany, gi, oi}); err != nil {
				return err
			}
		}
	}
	for gi, g := range ds.department {
		for oi, o := range g.Outcomes {
			if err := add(o.ID, outcomeRef{tierDepartment, gi, oi}); err != nil {
				return err
			}
		}
	}
	for gi, g := range ds.individual {
		for oi, o := range g.Outcomes {
			if err := add(o.ID, outcomeRef{tierIndividual, gi, oi}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ds *dataset) clone() *dataset {
	c := &dataset{
		company:        make([]CompanyWhyGO, len(ds.company)),
		department:     make([]DepartmentWhyGO, len(ds.department)),
		individual:     make([]IndividualWhyGO, len(ds.individual)),
		people:         make([]Person, len(ds.people)),
		depts:          make([]Department, len(ds.depts)),
		companyMeta:    cloneMeta(ds.companyMeta),
		departmentMeta: cloneMeta(ds.departmentMeta),
		individualMeta: cloneMeta(ds.individualMeta),
		employeesMeta:  cloneMeta(ds.employeesMeta),
	}
	for i := range ds.company {
		c.company[i] = *ds.company[i].Clone()
	}
	for i := range ds.department {
		c.department[i] = *ds.department[i].Clone()
	}
	for i := range ds.individual {
		c.individual[i] = *ds.individual[i].Clone()
	}
	for i := range ds.people {
		c.people[i] = *ds.people[i].Clone()
	}
	for i := range ds.depts {
		c.depts[i] = *ds.depts[i].Clone()
	}
	c.index = make(map[string]outcomeRef, len(ds.index))
	for id, ref := range ds.index {
		c.index[id] = ref
	}
	return c
}

func (ds *dataset) outcomeAt(ref outcomeRef) *Outcome {
	switch ref.tier {
	case tierCompany:
		return &ds.company[ref.goal].Outcomes[ref.outcome]
	case tierDepartment:
		return &ds.department[ref.goal].Outcomes[ref.outcome]
	default:
		return &ds.individual[ref.goal].Outcomes[ref.outcome]
	}
}

func cloneMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// jsonRepository is the JSON-file implementation. Mutations go to a pending
// copy of the dataset; SaveAll writes the pending snapshot with a staged
// atomic commit and only then promotes it to canonical, so the canonical
// in-memory state never diverges from disk on a failed save.
type jsonRepository struct {
	dir string
	now func() time.Time

	mu      sync.Mutex
	cur     *dataset
	pending *dataset
}

func NewJSONRepository(dir string) (Repository, error) {
	r := &jsonRepository{dir: dir, now: time.Now}

	ds := &dataset{}

	var cf companyFile
	if err := storage.ReadJSON(filepath.Join(dir, companyFileName), &cf); err != nil {
		return nil, err
	}
	ds.company = cf.CompanyGoals
	ds.companyMeta = cf.Metadata

	var df departmentFile
	if err := storage.ReadJSON(filepath.Join(dir, departmentFileName), &df); err != nil {
		return nil, err
	}
	ds.department = df.DepartmentGoals
	ds.departmentMeta = df.Metadata

	var inf individualFile
	if err := storage.ReadJSON(filepath.Join(dir, individualFileName), &inf); err != nil {
		return nil, err
	}
	ds.individual = inf.IndividualGoals
	ds.individualMeta = inf.Metadata

	var ef employeesFile
	if err := storage.ReadJSON(filepath.Join(dir, employeesFileName), &ef); err != nil {
		return nil, err
	}
	ds.people = ef.Employees
	ds.employeesMeta = ef.Metadata

	var dpf departmentsFile
	if err := storage.ReadJSON(filepath.Join(dir, departmentsFileName), &dpf); err != nil {
		return nil, err
	}
	ds.depts = dpf.Departments

	if err := ds.buildIndex(); err != nil {
		return nil, err
	}

	r.cur = ds
	return r, nil
}

// working returns the dataset mutations should apply to, creating the
// pending copy on first use.
func (r *jsonRepository) working() *dataset {
	if r.pending == nil {
		r.pending = r.cur.clone()
	}
	return r.pending
}

// reading returns the dataset lookups should see: the pending copy while an
// operation is mid-flight, otherwise the canonical snapshot.
func (r *jsonRepository) reading() *dataset {
	if r.pending != nil {
		return r.pending
	}
	return r.cur
}

func (r *jsonRepository) GetAllCompanyGoals() []CompanyWhyGO {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneCompanyGoals(r.reading().company)
}

func (r *jsonRepository) GetCompanyGoal(id string) (*CompanyWhyGO, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reading().company {
		if r.reading().company[i].ID == id {
			return r.reading().company[i].Clone(), true
		}
	}
	return nil, false
}

func (r *jsonRepository) GetAllDepartmentGoals() []DepartmentWhyGO {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneDepartmentGoals(r.reading().department)
}

func (r *jsonRepository) GetDepartmentGoalsByDepartment(deptID string) []DepartmentWhyGO {
	r.mu.Lock()
	defer r.mu.Unlock()
	var goals []DepartmentWhyGO
	for i := range r.reading().department {
		if r.reading().department[i].DepartmentID == deptID {
			goals = append(goals, *r.reading().department[i].Clone())
		}
	}
	return goals
}

func (r *jsonRepository) GetAllIndividualGoals() []IndividualWhyGO {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneIndividualGoals(r.reading().individual)
}

func (r *jsonRepository) GetIndividualGoalsByPerson(personID string) []IndividualWhyGO {
	r.mu.Lock()
	defer r.mu.Unlock()
	var goals []IndividualWhyGO
	for i := range r.reading().individual {
		if r.reading().individual[i].PersonID == personID {
			goals = append(goals, *r.reading().individual[i].Clone())
		}
	}
	return goals
}

func (r *jsonRepository) GetGoalsByStatus(status GoalStatus) GoalsByStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds := r.reading()

	var out GoalsByStatus
	for i := range ds.company {
		if ds.company[i].Status == status {
			out.Company = append(out.Company, *ds.company[i].Clone())
		}
	}
	for i := range ds.department {
		if ds.department[i].Status == status {
			out.Department = append(out.Department, *ds.department[i].Clone())
		}
	}
	for i := range ds.individual {
		if ds.individual[i].Status == status {
			out.Individual = append(out.Individual, *ds.individual[i].Clone())
		}
	}
	return out
}

func (r *jsonRepository) GetOutcome(id string) (*Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds := r.reading()
	ref, ok := ds.index[id]
	if !ok {
		return nil, false
	}
	return ds.outcomeAt(ref).Clone(), true
}

func (r *jsonRepository) ParentGoalStatus(outcomeID string) (GoalStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds := r.reading()
	ref, ok := ds.index[outcomeID]
	if !ok {
		return "", false
	}
	switch ref.tier {
	case tierCompany:
		return ds.company[ref.goal].Status, true
	case tierDepartment:
		return ds.department[ref.goal].Status, true
	default:
		return ds.individual[ref.goal].Status, true
	}
}

func (r *jsonRepository) UpdateOutcome(outcome *Outcome) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.reading().index[outcome.ID]
	if !ok {
		return false
	}

	ds := r.working()
	now := r.now().Format(time.RFC3339)
	*ds.outcomeAt(ref) = *outcome.Clone()
	switch ref.tier {
	case tierCompany:
		ds.company[ref.goal].UpdatedAt = now
	case tierDepartment:
		ds.department[ref.goal].UpdatedAt = now
	default:
		ds.individual[ref.goal].UpdatedAt = now
	}
	return true
}

func (r *jsonRepository) CreateIndividualGoal(goal *IndividualWhyGO) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ds := r.reading()
	for i := range ds.individual {
		if ds.individual[i].ID == goal.ID {
			return false
		}
	}
	for _, o := range goal.Outcomes {
		if _, exists := ds.index[o.ID]; exists {
			return false
		}
	}

	w := r.working()
	g := goal.Clone()
	g.CreatedAt = r.now().Format(time.RFC3339)
	g.UpdatedAt = g.CreatedAt
	w.individual = append(w.individual, *g)
	gi := len(w.individual) - 1
	for oi, o := range g.Outcomes {
		w.index[o.ID] = outcomeRef{tierIndividual, gi, oi}
	}
	return true
}

func (r *jsonRepository) UpdateIndividualGoal(goal *IndividualWhyGO) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := -1
	for i := range r.reading().individual {
		if r.reading().individual[i].ID == goal.ID {
			found = i
			break
		}
	}
	if found < 0 {
		return false
	}

	ds := r.working()
	g := goal.Clone()
	g.UpdatedAt = r.now().Format(time.RFC3339)
	ds.individual[found] = *g
	if err := ds.buildIndex(); err != nil {
		// Replacement introduced a duplicate outcome id; throw the pending
		// copy away so the canonical dataset stays intact.
		r.pending = nil
		return false
	}
	return true
}

func (r *jsonRepository) GetPerson(id string) (*Person, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reading().people {
		if r.reading().people[i].ID == id {
			return r.reading().people[i].Clone(), true
		}
	}
	return nil, false
}

func (r *jsonRepository) GetPersonByEmail(email string) (*Person, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if email == "" {
		return nil, false
	}
	for i := range r.reading().people {
		p := &r.reading().people[i]
		if p.Email != "" && strings.EqualFold(p.Email, email) {
			return p.Clone(), true
		}
	}
	return nil, false
}

func (r *jsonRepository) GetAllPeople() []Person {
	r.mu.Lock()
	defer r.mu.Unlock()
	people := make([]Person, len(r.reading().people))
	for i := range r.reading().people {
		people[i] = *r.reading().people[i].Clone()
	}
	return people
}

func (r *jsonRepository) GetPeopleByDepartment(deptID string) []Person {
	r.mu.Lock()
	defer r.mu.Unlock()
	var people []Person
	for i := range r.reading().people {
		if r.reading().people[i].DepartmentID == deptID {
			people = append(people, *r.reading().people[i].Clone())
		}
	}
	return people
}

func (r *jsonRepository) UpdatePerson(person *Person) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := -1
	for i := range r.reading().people {
		if r.reading().people[i].ID == person.ID {
			found = i
			break
		}
	}
	if found < 0 {
		return false
	}

	r.working().people[found] = *person.Clone()
	return true
}

func (r *jsonRepository) GetDepartment(id string) (*Department, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reading().depts {
		if r.reading().depts[i].ID == id {
			return r.reading().depts[i].Clone(), true
		}
	}
	return nil, false
}

func (r *jsonRepository) GetAllDepartments() []Department {
	r.mu.Lock()
	defer r.mu.Unlock()
	depts := make([]Department, len(r.reading().depts))
	for i := range r.reading().depts {
		depts[i] = *r.reading().depts[i].Clone()
	}
	return depts
}

// SaveAll serializes the goal tiers and employees back to their files with a
// staged atomic commit. On success the pending snapshot becomes canonical; on
// failure it is discarded so memory keeps matching disk, and the caller sees
// the error. departments.json is read-only and never rewritten.
func (r *jsonRepository) SaveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ds := r.reading()
	now := r.now().Format(time.RFC3339)

	files := make(map[string][]byte, 4)

	companyData, err := storage.MarshalIndent(companyFile{
		Metadata:     stampMeta(ds.companyMeta, now),
		CompanyGoals: ds.company,
	})
	if err != nil {
		return fmt.Errorf("encode company goals: %w", err)
	}
	files[filepath.Join(r.dir, companyFileName)] = companyData

	departmentData, err := storage.MarshalIndent(departmentFile{
		Metadata:        stampMeta(ds.departmentMeta, now),
		DepartmentGoals: ds.department,
	})
	if err != nil {
		return fmt.Errorf("encode department goals: %w", err)
	}
	files[filepath.Join(r.dir, departmentFileName)] = departmentData

	individualData, err := storage.MarshalIndent(individualFile{
		Metadata:        stampMeta(ds.individualMeta, now),
		IndividualGoals: ds.individual,
	})
	if err != nil {
		return fmt.Errorf("encode individual goals: %w", err)
	}
	files[filepath.Join(r.dir, individualFileName)] = individualData

	employeesData, err := storage.MarshalIndent(employeesFile{
		Metadata:  stampMeta(ds.employeesMeta, now),
		Employees: ds.people,
	})
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	files[filepath.Join(r.dir, employeesFileName)] = employeesData

	if err := storage.WriteAllStaged(files); err != nil {
		r.pending = nil
		return fmt.Errorf("save whygo data: %w", err)
	}

	if r.pending != nil {
		r.cur = r.pending
		r.pending = nil
	}
	return nil
}

func stampMeta(meta map[string]any, now string) map[string]any {
	stamped := cloneMeta(meta)
	if stamped == nil {
		stamped = make(map[string]any, 1)
	}
	stamped["last_updated"] = now
	return stamped
}

func cloneCompanyGoals(goals []CompanyWhyGO) []CompanyWhyGO {
	out := make([]CompanyWhyGO, len(goals))
	for i := range goals {
		out[i] = *goals[i].Clone()
	}
	return out
}

func cloneDepartmentGoals(goals []DepartmentWhyGO) []DepartmentWhyGO {
	out := make([]DepartmentWhyGO, len(goals))
	for i := range goals {
		out[i] = *goals[i].Clone()
	}
	return out
}

func cloneIndividualGoals(goals []IndividualWhyGO) []IndividualWhyGO {
	out := make([]IndividualWhyGO, len(goals))
	for i := range goals {
		out[i] = *goals[i].Clone()
	}
	return out
}
