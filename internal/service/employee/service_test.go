package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *employee.Employee) error {
	for _, existing := range f.employees {
		if existing.EmployeeCode == e.EmployeeCode {
			return employee.ErrEmployeeCodeExists
		}
		if existing.Email == e.Email {
			return employee.ErrEmailExists
		}
	}
	f.nextID++
	e.ID = fmt.Sprintf("emp-%d", f.nextID)
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *employee.Employee) error {
	if _, ok := f.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	cp := *e
	f.employees[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if filter.Role != nil && string(e.Role) != *filter.Role {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByTeamLeader(_ context.Context, teamLeaderID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.TeamLeaderID != nil && *e.TeamLeaderID == teamLeaderID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func seedTeamLeader(t *testing.T, repo *fakeEmployeeRepo) string {
	t.Helper()
	tl := &employee.Employee{
		EmployeeCode: "EMP-0100",
		FullName:     "Ravi Kumar",
		Email:        "ravi@example.com",
		Role:         employee.RoleTeamLeader,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), tl))
	return tl.ID
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP-0001",
		FullName:     "Asha Verma",
		Email:        "Asha@Example.com",
		Password:     "long-enough",
		Role:         "employee",
		BaseSalary:   decimal.NewFromInt(26000),
		JoinDate:     "2026-01-05",
	}
}

func TestCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "asha@example.com", resp.Email, "email is stored lowercased")
	assert.True(t, resp.IsActive)
	assert.Equal(t, "2026-01-05", resp.JoinDate)

	stored := repo.employees[resp.ID]
	assert.NotEqual(t, "long-enough", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long-enough")))
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.EmployeeCode = "nope"
	req.Password = "short"

	_, err := svc.Create(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestCreateEmployeeTeamLeaderMustHoldRole(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.EmployeeCode = "EMP-0002"
	req.Email = "second@example.com"
	req.TeamLeaderID = &first.ID

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrNotATeamLeader)
}

func TestCreateEmployeeResolvesTeamLeaderName(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	tlID := seedTeamLeader(t, repo)

	req := validCreateRequest()
	req.TeamLeaderID = &tlID

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.TeamLeaderName)
	assert.Equal(t, "Ravi Kumar", *resp.TeamLeaderName)
}

func TestUpdateEmployeePartial(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newSalary := decimal.NewFromInt(30000)
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		BaseSalary: &newSalary,
	})
	require.NoError(t, err)

	assert.True(t, resp.BaseSalary.Equal(newSalary))
	assert.Equal(t, created.FullName, resp.FullName, "untouched fields keep their values")
}

func TestDeactivateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestListEmployeesFiltersByRole(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	seedTeamLeader(t, repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	role := "team_leader"
	resp, err := svc.List(context.Background(), employee.EmployeeFilter{Role: &role})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
}

func TestCreateEmployeeDuplicateCode(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}
