package payroll

type ListFilter struct {
	EmployeeID string
	Month      string // "2006-01", optional
	Page       int
	Limit      int
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Month        string  `json:"month"`
	BasicSalary  int64   `json:"basic_salary"`
	Allowance    int64   `json:"allowance"`
	Deduction    int64   `json:"deduction"`
	NetSalary    int64   `json:"net_salary"`
	PaymentDate  *string `json:"payment_date,omitempty"`
	Status       string  `json:"status"`
}

type ListPayrollResponse struct {
	Items      []PayrollResponse `json:"items"`
	TotalItems int64             `json:"total_items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
