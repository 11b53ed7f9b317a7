package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	repo employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{repo: repo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.repo.GetByNID(ctx, req.NID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee number: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrNIDExists
	}

	existing, err = s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	created, err := s.repo.Create(ctx, employee.Employee{
		NID:        req.NID,
		Name:       req.Name,
		Email:      req.Email,
		Division:   req.Division,
		Position:   req.Position,
		WorkUnit:   req.WorkUnit,
		ShiftGroup: employee.ShiftGroup(req.ShiftGroup),
		JoinDate:   joinDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		Items:      make([]employee.EmployeeResponse, 0, len(items)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toResponse(item))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil && *req.Email != emp.Email {
		other, err := s.repo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if other != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}
	if req.Division != nil {
		emp.Division = *req.Division
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.WorkUnit != nil {
		emp.WorkUnit = *req.WorkUnit
	}
	if req.ShiftGroup != nil {
		emp.ShiftGroup = employee.ShiftGroup(*req.ShiftGroup)
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		NID:        emp.NID,
		Name:       emp.Name,
		Email:      emp.Email,
		Division:   emp.Division,
		Position:   emp.Position,
		WorkUnit:   emp.WorkUnit,
		ShiftGroup: string(emp.ShiftGroup),
		AvatarURL:  emp.AvatarURL,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
	}
}
