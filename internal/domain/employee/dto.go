package employee

import (
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	NID        string `json:"nid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Division   string `json:"division"`
	Position   string `json:"position"`
	WorkUnit   string `json:"work_unit"`
	ShiftGroup string `json:"shift_group"`
	JoinDate   string `json:"join_date"` // "2006-01-02"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidNID(r.NID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nid",
			Message: "nid must be 3 uppercase letters followed by digits",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if !validator.IsInSlice(r.ShiftGroup, ShiftGroupValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_group",
			Message: "shift_group must be one of Shift A-D, Daytime, Reguler",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Division   *string `json:"division"`
	Position   *string `json:"position"`
	WorkUnit   *string `json:"work_unit"`
	ShiftGroup *string `json:"shift_group"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.ShiftGroup != nil && !validator.IsInSlice(*r.ShiftGroup, ShiftGroupValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_group",
			Message: "shift_group must be one of Shift A-D, Daytime, Reguler",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Search     string
	Division   string
	ShiftGroup string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	NID        string  `json:"nid"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Division   string  `json:"division"`
	Position   string  `json:"position"`
	WorkUnit   string  `json:"work_unit"`
	ShiftGroup string  `json:"shift_group"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	JoinDate   string  `json:"join_date"`
}

type ListEmployeeResponse struct {
	Items      []EmployeeResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
