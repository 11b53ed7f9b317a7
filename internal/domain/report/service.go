package report

import "context"

// ReportService produces downloadable exports of attendance data.
type ReportService interface {
	// MonthlyAttendance builds an XLSX recap of every attendance record
	// in the given calendar month.
	MonthlyAttendance(ctx context.Context, req MonthlyAttendanceRequest) (ReportFile, error)
}
