package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/db/ent/schema/utils"
)

type LabResult struct{ ent.Schema }

func (LabResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lab_result"},
	}
}

func (LabResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// One result per job; persisted as an upsert keyed on job_id so
		// at-least-once delivery cannot create duplicates.
		field.UUID("job_id", uuid.UUID{}).Unique(),
		field.String("panel_type").NotEmpty().
			Validate(utils.EnumValidator(constants.Panels...)),
		field.Time("report_date"),
		field.JSON("rows", json.RawMessage{}),
		field.String("summary").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("doctor_notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("total_tests").Default(0),
		field.Int("normal_count").Default(0),
		field.Int("abnormal_count").Default(0),
		field.Int("critical_count").Default(0),
		field.String("overall_status").NotEmpty().
			Validate(utils.EnumValidator(constants.OverallStatuses...)),
		field.Time("created_at").Default(time.Now),
	}
}

func (LabResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").Unique(),
	}
}
