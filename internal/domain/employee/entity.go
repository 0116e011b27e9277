package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies which portal an employee belongs to.
type Role string

const (
	RoleHR         Role = "hr"
	RoleTeamLeader Role = "team_leader"
	RoleEmployee   Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleHR, RoleTeamLeader, RoleEmployee:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	TeamLeaderID *string
	Designation  *string
	Department   *string
	BaseSalary   decimal.Decimal
	JoinDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	TeamLeaderName *string
}
