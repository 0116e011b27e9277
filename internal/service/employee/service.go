package employee

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sumit123-456/backend-project/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.TeamLeaderID != nil {
		tl, err := s.employeeRepo.GetByID(ctx, *req.TeamLeaderID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if tl.Role != employee.RoleTeamLeader {
			return employee.EmployeeResponse{}, employee.ErrNotATeamLeader
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)
	emp := &employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         employee.Role(strings.ToLower(req.Role)),
		TeamLeaderID: req.TeamLeaderID,
		Designation:  req.Designation,
		Department:   req.Department,
		BaseSalary:   req.BaseSalary,
		JoinDate:     joinDate,
		IsActive:     true,
	}
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(ctx, emp), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp), nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.TeamLeaderID != nil {
		tl, err := s.employeeRepo.GetByID(ctx, *req.TeamLeaderID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if tl.Role != employee.RoleTeamLeader {
			return employee.EmployeeResponse{}, employee.ErrNotATeamLeader
		}
		emp.TeamLeaderID = req.TeamLeaderID
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp), nil
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, s.toResponse(ctx, &employees[i]))
	}
	return resp, nil
}

func (s *employeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	emp.IsActive = false
	return s.employeeRepo.Update(ctx, emp)
}

func (s *employeeServiceImpl) toResponse(ctx context.Context, emp *employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Role:         string(emp.Role),
		TeamLeaderID: emp.TeamLeaderID,
		Designation:  emp.Designation,
		Department:   emp.Department,
		BaseSalary:   emp.BaseSalary,
		JoinDate:     emp.JoinDate.Format("2006-01-02"),
		IsActive:     emp.IsActive,
	}

	if emp.TeamLeaderName != nil {
		resp.TeamLeaderName = emp.TeamLeaderName
	} else if emp.TeamLeaderID != nil {
		if tl, err := s.employeeRepo.GetByID(ctx, *emp.TeamLeaderID); err == nil {
			resp.TeamLeaderName = &tl.FullName
		}
	}

	return resp
}
