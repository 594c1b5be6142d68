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

type Visitor struct{ ent.Schema }

func (Visitor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "visitors"},
	}
}

func (Visitor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// 11-digit string; leading zeros are significant
		field.String("tax_id").Optional().Nillable().MaxLen(11).
			SchemaType(map[string]string{dialect.Postgres: "char(11)"}),
		// DD/MM/YYYY as printed on the document
		field.String("birth_date").Optional().Nillable().MaxLen(10),
		field.String("photo_path").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Visitor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("visits", Visit.Type),
		edge.To("jobs", ScanJob.Type),
	}
}

func (Visitor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tax_id"),
		index.Fields("name"),
	}
}
