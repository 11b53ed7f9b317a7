package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/report"
)

const sheetName = "Attendance"

var headers = []string{
	"Employee Number",
	"Employee Name",
	"Date",
	"Shift",
	"Check In",
	"Check Out",
	"Status",
	"Late (minutes)",
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
	}
}

// MonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceRequest) (report.ReportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ReportFile{}, err
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	rowNum := 2
	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		nid, name := rec.EmployeeID, ""
		if ok {
			nid, name = emp.NID, emp.Name
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), nid)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), rec.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), string(rec.ShiftType))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), s.formatClock(rec.CheckIn))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), s.formatClock(rec.CheckOut))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), string(rec.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), rec.LateMinutes)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.ReportFile{
		Filename:    fmt.Sprintf("attendance-%04d-%02d.xlsx", req.Year, req.Month),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(s.loc).Format("15:04")
}
