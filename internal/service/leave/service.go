package leave

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
	"github.com/sumit123-456/backend-project/internal/repository/postgresql"
)

type leaveServiceImpl struct {
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	policy         *attendance.WorkdayPolicy
	runInTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy *attendance.WorkdayPolicy,
	db *database.DB,
) leave.LeaveService {
	return &leaveServiceImpl{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *leaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.IsActive {
		return leave.LeaveResponse{}, employee.ErrEmployeeInactive
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlapping, err := s.leaveRepo.CountActiveOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping > 0 {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	lr := &leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  leave.InclusiveDays(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}
	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(lr), nil
}

func (s *leaveServiceImpl) ReviewAsTeamLeader(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	owner, err := s.employeeRepo.GetByID(ctx, lr.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if owner.TeamLeaderID == nil || *owner.TeamLeaderID != req.ReviewerID {
		return leave.LeaveResponse{}, leave.ErrNotTeamLeader
	}

	now := time.Now()
	lr.TLReviewedBy = &req.ReviewerID
	lr.TLReviewedAt = &now
	if req.Approve {
		lr.Status = leave.StatusTLApproved
	} else {
		lr.Status = leave.StatusRejected
		lr.RejectionReason = req.Reason
	}

	if err := s.leaveRepo.Update(ctx, lr); err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(lr), nil
}

func (s *leaveServiceImpl) ReviewAsHR(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	switch lr.Status {
	case leave.StatusTLApproved:
	case leave.StatusPending:
		return leave.LeaveResponse{}, leave.ErrAwaitingTeamLeader
	default:
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	now := time.Now()
	lr.HRReviewedBy = &req.ReviewerID
	lr.HRReviewedAt = &now
	if req.Approve {
		lr.Status = leave.StatusApproved
	} else {
		lr.Status = leave.StatusRejected
		lr.RejectionReason = req.Reason
	}

	if !req.Approve {
		if err := s.leaveRepo.Update(ctx, lr); err != nil {
			return leave.LeaveResponse{}, err
		}
		return toLeaveResponse(lr), nil
	}

	// Approval also stamps the covered working days as on-leave, in
	// one transaction with the status change.
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.leaveRepo.Update(txCtx, lr); err != nil {
			return err
		}
		return s.stampLeaveDays(txCtx, lr)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(lr), nil
}

func (s *leaveServiceImpl) stampLeaveDays(ctx context.Context, lr *leave.LeaveRequest) error {
	for d := lr.StartDate; !d.After(lr.EndDate); d = d.AddDate(0, 0, 1) {
		if !s.policy.IsWorkingDay(d) {
			continue
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, lr.EmployeeID, d)
		switch {
		case err == nil:
			if existing.CheckInTime != nil {
				// the employee actually worked this day, leave it be
				continue
			}
			existing.Status = attendance.StatusOnLeave
			existing.Remarks = existing.Remarks + "; covered by approved leave"
			if err := s.attendanceRepo.Update(ctx, existing); err != nil {
				return err
			}
		case errors.Is(err, attendance.ErrAttendanceNotFound):
			day := &attendance.AttendanceDay{
				EmployeeID:  lr.EmployeeID,
				Date:        d,
				Status:      attendance.StatusOnLeave,
				WorkedHours: decimal.Zero,
				Remarks:     "covered by approved leave",
			}
			if err := s.attendanceRepo.Create(ctx, day); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

func (s *leaveServiceImpl) Cancel(ctx context.Context, leaveID, employeeID string) (leave.LeaveResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lr.EmployeeID != employeeID {
		return leave.LeaveResponse{}, leave.ErrNotOwner
	}
	if lr.Status.Terminal() {
		return leave.LeaveResponse{}, leave.ErrNotCancellable
	}

	lr.Status = leave.StatusCancelled
	if err := s.leaveRepo.Update(ctx, lr); err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(lr), nil
}

func (s *leaveServiceImpl) Get(ctx context.Context, leaveID string) (leave.LeaveResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(lr), nil
}

func (s *leaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   make([]leave.LeaveResponse, 0, len(requests)),
	}
	for i := range requests {
		resp.Requests = append(resp.Requests, toLeaveResponse(&requests[i]))
	}
	return resp, nil
}

func (s *leaveServiceImpl) ListPendingForReviewer(ctx context.Context, reviewerID string) ([]leave.LeaveResponse, error) {
	reviewer, err := s.employeeRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	var requests []leave.LeaveRequest
	switch reviewer.Role {
	case employee.RoleHR:
		requests, err = s.leaveRepo.ListByStatus(ctx, leave.StatusTLApproved)
	case employee.RoleTeamLeader:
		reports, listErr := s.employeeRepo.ListByTeamLeader(ctx, reviewerID)
		if listErr != nil {
			return nil, listErr
		}
		ids := make([]string, 0, len(reports))
		for _, r := range reports {
			ids = append(ids, r.ID)
		}
		requests, err = s.leaveRepo.ListByStatusAndEmployees(ctx, leave.StatusPending, ids)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toLeaveResponse(&requests[i]))
	}
	return responses, nil
}

func toLeaveResponse(lr *leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		EmployeeCode:    lr.EmployeeCode,
		Type:            lr.Type,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		TotalDays:       lr.TotalDays,
		Reason:          lr.Reason,
		Status:          lr.Status,
		TLReviewedBy:    lr.TLReviewedBy,
		TLReviewedAt:    lr.TLReviewedAt,
		HRReviewedBy:    lr.HRReviewedBy,
		HRReviewedAt:    lr.HRReviewedAt,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt,
	}
}
