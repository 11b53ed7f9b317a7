package report

import (
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

type MonthlyAttendanceRequest struct {
	Year  int
	Month int // 1-12
}

func (r *MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportFile is a generated export ready to stream to the client.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
