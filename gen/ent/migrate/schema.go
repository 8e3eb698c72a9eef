// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobColumns holds the columns for the "analysis_job" table.
	AnalysisJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "result_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// AnalysisJobTable holds the schema information for the "analysis_job" table.
	AnalysisJobTable = &schema.Table{
		Name:       "analysis_job",
		Columns:    AnalysisJobColumns,
		PrimaryKey: []*schema.Column{AnalysisJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_job_profiles_jobs",
				Columns:    []*schema.Column{AnalysisJobColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "analysis_job_report_file_jobs",
				Columns:    []*schema.Column{AnalysisJobColumns[8]},
				RefColumns: []*schema.Column{ReportFileColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_file_id_profile_id_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobColumns[8], AnalysisJobColumns[7], AnalysisJobColumns[2]},
			},
			{
				Name:    "analysisjob_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobColumns[7], AnalysisJobColumns[5]},
			},
		},
	}
	// LabResultColumns holds the columns for the "lab_result" table.
	LabResultColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "panel_type", Type: field.TypeString},
		{Name: "report_date", Type: field.TypeTime},
		{Name: "rows", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "doctor_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "total_tests", Type: field.TypeInt, Default: 0},
		{Name: "normal_count", Type: field.TypeInt, Default: 0},
		{Name: "abnormal_count", Type: field.TypeInt, Default: 0},
		{Name: "critical_count", Type: field.TypeInt, Default: 0},
		{Name: "overall_status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LabResultTable holds the schema information for the "lab_result" table.
	LabResultTable = &schema.Table{
		Name:       "lab_result",
		Columns:    LabResultColumns,
		PrimaryKey: []*schema.Column{LabResultColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labresult_job_id",
				Unique:  true,
				Columns: []*schema.Column{LabResultColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ReportFileColumns holds the columns for the "report_file" table.
	ReportFileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "report_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ReportFileTable holds the schema information for the "report_file" table.
	ReportFileTable = &schema.Table{
		Name:       "report_file",
		Columns:    ReportFileColumns,
		PrimaryKey: []*schema.Column{ReportFileColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_file_profiles_files",
				Columns:    []*schema.Column{ReportFileColumns[4]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportfile_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ReportFileColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobTable,
		LabResultTable,
		ProfilesTable,
		ReportFileTable,
	}
)

func init() {
	AnalysisJobTable.ForeignKeys[0].RefTable = ProfilesTable
	AnalysisJobTable.ForeignKeys[1].RefTable = ReportFileTable
	AnalysisJobTable.Annotation = &entsql.Annotation{
		Table: "analysis_job",
	}
	LabResultTable.Annotation = &entsql.Annotation{
		Table: "lab_result",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ReportFileTable.ForeignKeys[0].RefTable = ProfilesTable
	ReportFileTable.Annotation = &entsql.Annotation{
		Table: "report_file",
	}
}
