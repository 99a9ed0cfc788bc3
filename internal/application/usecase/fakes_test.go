package usecase_test

import (
	"fmt"
	"sync"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	mu     sync.Mutex
	nextID int
	seq    int
	byID   map[int]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[int]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.seq++
	e.ID = r.nextID
	e.Number = fmt.Sprintf("%04d", r.seq)
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByNumber(number string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.Number == number {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) ListActive() ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Employee
	for id := 1; id <= r.nextID; id++ {
		e, ok := r.byID[id]
		if !ok || !e.IsActive() {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Employee
	for id := 1; id <= r.nextID; id++ {
		if e, ok := r.byID[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) SetHidden(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		e.Hidden = true
	}
	return nil
}

func (r *fakeEmployeeRepo) CountActiveByJobCode(code string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.byID {
		if e.IsActive() && e.JobCode == code {
			n++
		}
	}
	return n, nil
}

type fakeJobTypeRepo struct {
	mu     sync.Mutex
	byCode map[string]*entity.JobType
	order  []string
}

func newFakeJobTypeRepo() *fakeJobTypeRepo {
	return &fakeJobTypeRepo{byCode: make(map[string]*entity.JobType)}
}

func (r *fakeJobTypeRepo) Create(j *entity.JobType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *j
	r.byCode[j.Code] = &cp
	r.order = append(r.order, j.Code)
	return nil
}

func (r *fakeJobTypeRepo) GetByCode(code string) (*entity.JobType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobTypeRepo) GetByName(name string) (*entity.JobType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.byCode {
		if j.Name == name {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeJobTypeRepo) List() ([]*entity.JobType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.JobType, 0, len(r.order))
	for _, code := range r.order {
		if j, ok := r.byCode[code]; ok {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeJobTypeRepo) UpdateName(code, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.byCode[code]; ok {
		j.Name = name
	}
	return nil
}

func (r *fakeJobTypeRepo) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byCode, code)
	return nil
}

type fakeVacationRepo struct {
	mu   sync.Mutex
	byID map[int]*entity.VacationBalance
}

func newFakeVacationRepo() *fakeVacationRepo {
	return &fakeVacationRepo{byID: make(map[int]*entity.VacationBalance)}
}

func (r *fakeVacationRepo) Init(b *entity.VacationBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.byID[b.EmployeeID] = &cp
	return nil
}

func (r *fakeVacationRepo) Get(employeeID int) (*entity.VacationBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[employeeID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeVacationRepo) Reserve(employeeID int, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[employeeID]
	if !ok {
		return fmt.Errorf("saldo no inicializado para %d", employeeID)
	}
	if b.Consumed >= b.Granted {
		return fmt.Errorf("saldo agotado para %d", employeeID)
	}
	b.Consumed++
	return nil
}
