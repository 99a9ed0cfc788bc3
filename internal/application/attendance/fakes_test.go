package attendance_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain"
	domattendance "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/internal/domain/vacation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. fakeStore junta libro de asistencia y saldos bajo un
// mutex, y fakeTxRunner ejecuta fn directamente contra él: suficiente para
// ejercitar la atomicidad lógica del caso de uso sin una BD real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	records  []*entity.AttendanceRecord
	balances map[int]*entity.VacationBalance
	grants   map[int]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		balances: make(map[int]*entity.VacationBalance),
		grants:   make(map[int]time.Time),
	}
}

func (s *fakeStore) grant(employeeID, days int, grantDate time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[employeeID] = &entity.VacationBalance{
		EmployeeID:  employeeID,
		Granted:     days,
		PeriodStart: grantDate,
	}
	s.grants[employeeID] = grantDate
}

func (s *fakeStore) consumed(employeeID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.balances[employeeID]; ok {
		return b.Consumed
	}
	return 0
}

func (s *fakeStore) recordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// fakeAttendanceRepo y fakeVacationRepo comparten el store, como los
// repositorios reales comparten transacción.

type fakeAttendanceRepo struct{ store *fakeStore }

func (r *fakeAttendanceRepo) Append(rec *entity.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *rec
	r.store.records = append(r.store.records, &cp)
	return nil
}

func (r *fakeAttendanceRepo) ListForDay(employeeID int, date string) ([]*entity.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AttendanceRecord
	for _, rec := range r.store.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListSince(cutoff string) ([]*entity.AttendanceRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AttendanceRecord
	for _, rec := range r.store.records {
		if rec.Date >= cutoff {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeVacationRepo struct{ store *fakeStore }

func (r *fakeVacationRepo) Init(b *entity.VacationBalance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *b
	r.store.balances[b.EmployeeID] = &cp
	return nil
}

func (r *fakeVacationRepo) Get(employeeID int) (*entity.VacationBalance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.balances[employeeID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeVacationRepo) Reserve(employeeID int, date string) error {
	day, err := time.Parse(domattendance.DateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: fecha %q", domain.ErrMalformedInput, date)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.balances[employeeID]
	if !ok {
		return fmt.Errorf("%w: saldo del empleado %d", domain.ErrNotFound, employeeID)
	}
	start, ok := vacation.PeriodStart(r.store.grants[employeeID], day)
	if !ok {
		return fmt.Errorf("%w: la fecha %s es anterior a la concesión de vacaciones", domain.ErrInvalidInput, date)
	}
	consumed := b.Consumed
	if !start.Equal(b.PeriodStart) {
		consumed = 0
	}
	if b.Granted <= 0 || consumed >= b.Granted {
		return fmt.Errorf("%w: 0 de %d días disponibles", domain.ErrInsufficientBalance, b.Granted)
	}
	b.PeriodStart = start
	b.Consumed = consumed + 1
	return nil
}

// fakeTxRunner ejecuta fn directamente; el candado por clave del caso de uso
// es quien serializa, igual que en producción lo hace junto a la tx.
type fakeTxRunner struct{ store *fakeStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	records repository.AttendanceRepository,
	vacations repository.VacationRepository,
) error) error {
	return fn(&fakeAttendanceRepo{store: tr.store}, &fakeVacationRepo{store: tr.store})
}

type fakeEmployeeRepo struct {
	mu   sync.Mutex
	byID map[int]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[int]*entity.Employee)}
}

func (r *fakeEmployeeRepo) add(e *entity.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.byID[e.ID] = &cp
}

func (r *fakeEmployeeRepo) setGrantDate(id int, d time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byID[id]; ok {
		e.VacationGrantDate = d
	}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.add(e)
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
	for _, e := range r.byID {
		if !e.IsActive() {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Employee
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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
