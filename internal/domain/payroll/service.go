package payroll

import "context"

// PayrollService exposes read-only access to monthly payroll records.
// Records are produced upstream; this service only lists and fetches.
type PayrollService interface {
	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter ListFilter) (ListPayrollResponse, error)
}
