package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/db/ent/schema/utils"
)

type AnalysisJob struct{ ent.Schema }

func (AnalysisJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_job"},
	}
}

func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("result_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", ReportFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("profile", Profile.Type).
			Ref("jobs").
			Field("profile_id").
			Unique().
			Required(),
	}
}

func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "profile_id", "status"),
		index.Fields("profile_id", "created_at"),
	}
}
