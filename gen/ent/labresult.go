// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
)

// LabResult is the model entity for the LabResult schema.
type LabResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PanelType holds the value of the "panel_type" field.
	PanelType string `json:"panel_type,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate time.Time `json:"report_date,omitempty"`
	// Rows holds the value of the "rows" field.
	Rows json.RawMessage `json:"rows,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// DoctorNotes holds the value of the "doctor_notes" field.
	DoctorNotes string `json:"doctor_notes,omitempty"`
	// TotalTests holds the value of the "total_tests" field.
	TotalTests int `json:"total_tests,omitempty"`
	// NormalCount holds the value of the "normal_count" field.
	NormalCount int `json:"normal_count,omitempty"`
	// AbnormalCount holds the value of the "abnormal_count" field.
	AbnormalCount int `json:"abnormal_count,omitempty"`
	// CriticalCount holds the value of the "critical_count" field.
	CriticalCount int `json:"critical_count,omitempty"`
	// OverallStatus holds the value of the "overall_status" field.
	OverallStatus string `json:"overall_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labresult.FieldRows:
			values[i] = new([]byte)
		case labresult.FieldTotalTests, labresult.FieldNormalCount, labresult.FieldAbnormalCount, labresult.FieldCriticalCount:
			values[i] = new(sql.NullInt64)
		case labresult.FieldPanelType, labresult.FieldSummary, labresult.FieldDoctorNotes, labresult.FieldOverallStatus:
			values[i] = new(sql.NullString)
		case labresult.FieldReportDate, labresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case labresult.FieldID, labresult.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabResult fields.
func (_m *LabResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labresult.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case labresult.FieldPanelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field panel_type", values[i])
			} else if value.Valid {
				_m.PanelType = value.String
			}
		case labresult.FieldReportDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				_m.ReportDate = value.Time
			}
		case labresult.FieldRows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rows); err != nil {
					return fmt.Errorf("unmarshal field rows: %w", err)
				}
			}
		case labresult.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case labresult.FieldDoctorNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_notes", values[i])
			} else if value.Valid {
				_m.DoctorNotes = value.String
			}
		case labresult.FieldTotalTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tests", values[i])
			} else if value.Valid {
				_m.TotalTests = int(value.Int64)
			}
		case labresult.FieldNormalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field normal_count", values[i])
			} else if value.Valid {
				_m.NormalCount = int(value.Int64)
			}
		case labresult.FieldAbnormalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field abnormal_count", values[i])
			} else if value.Valid {
				_m.AbnormalCount = int(value.Int64)
			}
		case labresult.FieldCriticalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field critical_count", values[i])
			} else if value.Valid {
				_m.CriticalCount = int(value.Int64)
			}
		case labresult.FieldOverallStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_status", values[i])
			} else if value.Valid {
				_m.OverallStatus = value.String
			}
		case labresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabResult.
// This includes values selected through modifiers, order, etc.
func (_m *LabResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LabResult.
// Note that you need to call LabResult.Unwrap() before calling this method if this LabResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabResult) Update() *LabResultUpdateOne {
	return NewLabResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabResult) Unwrap() *LabResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LabResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabResult) String() string {
	var builder strings.Builder
	builder.WriteString("LabResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("panel_type=")
	builder.WriteString(_m.PanelType)
	builder.WriteString(", ")
	builder.WriteString("report_date=")
	builder.WriteString(_m.ReportDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rows))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("doctor_notes=")
	builder.WriteString(_m.DoctorNotes)
	builder.WriteString(", ")
	builder.WriteString("total_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTests))
	builder.WriteString(", ")
	builder.WriteString("normal_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NormalCount))
	builder.WriteString(", ")
	builder.WriteString("abnormal_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AbnormalCount))
	builder.WriteString(", ")
	builder.WriteString("critical_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalCount))
	builder.WriteString(", ")
	builder.WriteString("overall_status=")
	builder.WriteString(_m.OverallStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LabResults is a parsable slice of LabResult.
type LabResults []*LabResult
