package employee

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	Role         string          `json:"role"`
	TeamLeaderID *string         `json:"team_leader_id,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	Department   *string         `json:"department,omitempty"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	JoinDate     string          `json:"join_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match EMP-NNNN",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !Role(strings.ToLower(r.Role)).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: hr, team_leader, employee",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be non-negative",
		})
	}

	if _, valid := validator.IsValidDate(r.JoinDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name,omitempty"`
	TeamLeaderID *string          `json:"team_leader_id,omitempty"`
	Designation  *string          `json:"designation,omitempty"`
	Department   *string          `json:"department,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	TeamLeaderID   *string         `json:"team_leader_id,omitempty"`
	TeamLeaderName *string         `json:"team_leader_name,omitempty"`
	Designation    *string         `json:"designation,omitempty"`
	Department     *string         `json:"department,omitempty"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	JoinDate       string          `json:"join_date"`
	IsActive       bool            `json:"is_active"`
}

type EmployeeFilter struct {
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Search     *string `json:"search,omitempty"` // name or employee code
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Role != nil && !Role(*f.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: hr, team_leader, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}

// EmployeeService defines employee management operations.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}
