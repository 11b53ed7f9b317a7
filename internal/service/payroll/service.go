package payroll

import (
	"context"
	"fmt"

	"github.com/presensikita/presensi-backend-go/internal/domain/payroll"
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	repo payroll.PayrollRepository
}

func NewPayrollService(repo payroll.PayrollRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{repo: repo}
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) (payroll.ListPayrollResponse, error) {
	if filter.Month != "" && !validator.IsValidMonth(filter.Month) {
		return payroll.ListPayrollResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	resp := payroll.ListPayrollResponse{
		Items:      make([]payroll.PayrollResponse, 0, len(records)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, rec := range records {
		resp.Items = append(resp.Items, toResponse(rec))
	}
	return resp, nil
}

func toResponse(rec payroll.PayrollRecord) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Month:        rec.Month,
		BasicSalary:  rec.BasicSalary,
		Allowance:    rec.Allowance,
		Deduction:    rec.Deduction,
		NetSalary:    rec.NetSalary,
		Status:       string(rec.Status),
	}
	if rec.PaymentDate != nil {
		d := rec.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	return resp
}
