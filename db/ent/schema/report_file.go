package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReportFile struct{ ent.Schema }

func (ReportFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_file"},
	}
}

func (ReportFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		// Machine-readable text produced by the upstream decode step.
		field.String("report_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ReportFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("files").
			Field("profile_id").
			Unique().
			Required(),
		edge.To("jobs", AnalysisJob.Type),
	}
}

func (ReportFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}
