package payroll

import "time"

type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPending PaymentStatus = "PENDING"
)

// PayrollRecord is one employee's pay for one month. Amounts are in
// rupiah; no calculation happens here, records are produced upstream.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       string // "2006-01"
	BasicSalary int64
	Allowance   int64
	Deduction   int64
	NetSalary   int64
	PaymentDate *time.Time
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
