// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/db/ent/schema"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescStatus is the schema descriptor for status field.
	analysisjobDescStatus := analysisjobFields[4].Descriptor()
	// analysisjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisjob.StatusValidator = func() func(string) error {
		validators := analysisjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisjobDescProgress is the schema descriptor for progress field.
	analysisjobDescProgress := analysisjobFields[5].Descriptor()
	// analysisjob.DefaultProgress holds the default value on creation for the progress field.
	analysisjob.DefaultProgress = analysisjobDescProgress.Default.(int)
	// analysisjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	analysisjob.ProgressValidator = func() func(int) error {
		validators := analysisjobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[7].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	// analysisjobDescUpdatedAt is the schema descriptor for updated_at field.
	analysisjobDescUpdatedAt := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysisjob.DefaultUpdatedAt = analysisjobDescUpdatedAt.Default.(func() time.Time)
	// analysisjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysisjob.UpdateDefaultUpdatedAt = analysisjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// analysisjobDescID is the schema descriptor for id field.
	analysisjobDescID := analysisjobFields[0].Descriptor()
	// analysisjob.DefaultID holds the default value on creation for the id field.
	analysisjob.DefaultID = analysisjobDescID.Default.(func() uuid.UUID)
	labresultFields := schema.LabResult{}.Fields()
	_ = labresultFields
	// labresultDescPanelType is the schema descriptor for panel_type field.
	labresultDescPanelType := labresultFields[2].Descriptor()
	// labresult.PanelTypeValidator is a validator for the "panel_type" field. It is called by the builders before save.
	labresult.PanelTypeValidator = func() func(string) error {
		validators := labresultDescPanelType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(panel_type string) error {
			for _, fn := range fns {
				if err := fn(panel_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labresultDescTotalTests is the schema descriptor for total_tests field.
	labresultDescTotalTests := labresultFields[7].Descriptor()
	// labresult.DefaultTotalTests holds the default value on creation for the total_tests field.
	labresult.DefaultTotalTests = labresultDescTotalTests.Default.(int)
	// labresultDescNormalCount is the schema descriptor for normal_count field.
	labresultDescNormalCount := labresultFields[8].Descriptor()
	// labresult.DefaultNormalCount holds the default value on creation for the normal_count field.
	labresult.DefaultNormalCount = labresultDescNormalCount.Default.(int)
	// labresultDescAbnormalCount is the schema descriptor for abnormal_count field.
	labresultDescAbnormalCount := labresultFields[9].Descriptor()
	// labresult.DefaultAbnormalCount holds the default value on creation for the abnormal_count field.
	labresult.DefaultAbnormalCount = labresultDescAbnormalCount.Default.(int)
	// labresultDescCriticalCount is the schema descriptor for critical_count field.
	labresultDescCriticalCount := labresultFields[10].Descriptor()
	// labresult.DefaultCriticalCount holds the default value on creation for the critical_count field.
	labresult.DefaultCriticalCount = labresultDescCriticalCount.Default.(int)
	// labresultDescOverallStatus is the schema descriptor for overall_status field.
	labresultDescOverallStatus := labresultFields[11].Descriptor()
	// labresult.OverallStatusValidator is a validator for the "overall_status" field. It is called by the builders before save.
	labresult.OverallStatusValidator = func() func(string) error {
		validators := labresultDescOverallStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(overall_status string) error {
			for _, fn := range fns {
				if err := fn(overall_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labresultDescCreatedAt is the schema descriptor for created_at field.
	labresultDescCreatedAt := labresultFields[12].Descriptor()
	// labresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	labresult.DefaultCreatedAt = labresultDescCreatedAt.Default.(func() time.Time)
	// labresultDescID is the schema descriptor for id field.
	labresultDescID := labresultFields[0].Descriptor()
	// labresult.DefaultID holds the default value on creation for the id field.
	labresult.DefaultID = labresultDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[2].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[3].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	reportfileFields := schema.ReportFile{}.Fields()
	_ = reportfileFields
	// reportfileDescFilename is the schema descriptor for filename field.
	reportfileDescFilename := reportfileFields[2].Descriptor()
	// reportfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	reportfile.FilenameValidator = reportfileDescFilename.Validators[0].(func(string) error)
	// reportfileDescUploadedAt is the schema descriptor for uploaded_at field.
	reportfileDescUploadedAt := reportfileFields[4].Descriptor()
	// reportfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	reportfile.DefaultUploadedAt = reportfileDescUploadedAt.Default.(func() time.Time)
	// reportfileDescID is the schema descriptor for id field.
	reportfileDescID := reportfileFields[0].Descriptor()
	// reportfile.DefaultID holds the default value on creation for the id field.
	reportfile.DefaultID = reportfileDescID.Default.(func() uuid.UUID)
}
