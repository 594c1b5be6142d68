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
	"github.com/portaria-digital/concierge/constants"
	"github.com/portaria-digital/concierge/db/ent/schema/utils"
)

type Visit struct{ ent.Schema }

func (Visit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "visits"},
	}
}

func (Visit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("visitor_id", uuid.UUID{}),
		field.Time("entry_at").Default(time.Now),
		field.Time("exit_at").Optional().Nillable(),
		field.String("method").NotEmpty().
			Validate(utils.EnumValidator(constants.MatchMethods...)),
		field.Float32("confidence").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Visit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("visitor", Visitor.Type).
			Ref("visits").
			Field("visitor_id").
			Unique().
			Required(),
	}
}

func (Visit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("visitor_id", "entry_at"),
		index.Fields("entry_at"),
	}
}
