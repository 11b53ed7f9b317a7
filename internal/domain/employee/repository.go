package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNID(ctx context.Context, nid string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	SoftDelete(ctx context.Context, id string) error

	// ListActive returns all non-deleted employees, for the absent-marking job
	ListActive(ctx context.Context) ([]Employee, error)
}
