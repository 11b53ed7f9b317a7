package leave

import (
	"time"

	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	CategoryID string `json:"category_id"`
	StartDate  string `json:"start_date"` // "2006-01-02"
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Span returns the parsed dates and the inclusive day count. Call after
// Validate.
func (r *CreateLeaveRequest) Span() (start, end time.Time, days int) {
	start, _ = time.Parse("2006-01-02", r.StartDate)
	end, _ = time.Parse("2006-01-02", r.EndDate)
	days = int(end.Sub(start).Hours()/24) + 1
	return start, end, days
}

type DecideLeaveRequest struct {
	RequestID string `json:"-"`
	DecidedBy string `json:"decided_by"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if validator.IsEmpty(r.DecidedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "decided_by",
			Message: "decided_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	CategoryID    string  `json:"category_id"`
	CategoryLabel string  `json:"category_label"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	RequestedDays int     `json:"requested_days"`
	EntitledDays  int     `json:"entitled_days"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ListLeaveResponse struct {
	Items      []LeaveRequestResponse `json:"items"`
	TotalItems int64                  `json:"total_items"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}
