package payroll

import "context"

type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context, filter ListFilter) ([]PayrollRecord, int64, error)
}
