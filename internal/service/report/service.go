// Package report builds spreadsheet exports for ward administration.
package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

const censusSheet = "Census"

var censusHeader = []string{
	"Patient ID",
	"Name",
	"Gender",
	"Ward",
	"Room",
	"Bed",
	"Admission Date",
	"Admitting Doctor",
	"Admission Diagnosis",
}

var censusWidths = []float64{14, 28, 10, 14, 10, 10, 20, 16, 40}

type Servicer interface {
	Census(ctx context.Context) ([]byte, error)
}

type Service struct {
	patients repository.InPatientRepository
	now      func() time.Time
}

func NewService(patients repository.InPatientRepository) *Service {
	return &Service{patients: patients, now: time.Now}
}

// Census returns an xlsx workbook listing every currently admitted
// in-patient.
func (s *Service) Census(ctx context.Context) ([]byte, error) {
	if _, err := policy.Check(ctx, policy.ResourceReport, policy.OpRead, ""); err != nil {
		return nil, err
	}

	var admitted []*model.InPatient
	page := model.Page{Offset: 0, Limit: model.MaxPageLimit}
	for {
		batch, err := s.patients.ListAdmitted(ctx, page)
		if err != nil {
			return nil, service.Translate("In-patient", "list", err)
		}
		admitted = append(admitted, batch...)
		if len(batch) < page.Limit {
			break
		}
		page.Offset += page.Limit
	}

	data, err := buildCensus(admitted, s.now())
	if err != nil {
		return nil, errors.Internal(err)
	}
	return data, nil
}

func buildCensus(patients []*model.InPatient, generated time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(censusSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range censusHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(censusSheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(censusSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(censusSheet, col, col, censusWidths[i]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, p := range patients {
		ward := ""
		if p.WardType != nil {
			ward = string(*p.WardType)
		}
		row := []interface{}{
			p.ID,
			p.Name,
			string(p.Gender),
			ward,
			deref(p.RoomNumber),
			deref(p.BedNumber),
			p.AdmissionDate.UTC().Format("2006-01-02 15:04"),
			deref(p.AdmittingDoctorID),
			deref(p.AdmissionDiagnosis),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(censusSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	footer, err := excelize.CoordinatesToCellName(1, len(patients)+3)
	if err != nil {
		return nil, err
	}
	summary := fmt.Sprintf("%d admitted, generated %s", len(patients), generated.UTC().Format(time.RFC3339))
	if err := f.SetCellValue(censusSheet, footer, summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
