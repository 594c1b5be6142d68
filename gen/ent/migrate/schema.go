// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "fields_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "visitor_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_job_visitors_jobs",
				Columns:    []*schema.Column{ScanJobColumns[13]},
				RefColumns: []*schema.Column{VisitorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[5], ScanJobColumns[3]},
			},
			{
				Name:    "scanjob_visitor_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[13]},
			},
		},
	}
	// VisitsColumns holds the columns for the "visits" table.
	VisitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entry_at", Type: field.TypeTime},
		{Name: "exit_at", Type: field.TypeTime, Nullable: true},
		{Name: "method", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "visitor_id", Type: field.TypeUUID},
	}
	// VisitsTable holds the schema information for the "visits" table.
	VisitsTable = &schema.Table{
		Name:       "visits",
		Columns:    VisitsColumns,
		PrimaryKey: []*schema.Column{VisitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "visits_visitors_visits",
				Columns:    []*schema.Column{VisitsColumns[7]},
				RefColumns: []*schema.Column{VisitorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "visit_visitor_id_entry_at",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[7], VisitsColumns[1]},
			},
			{
				Name:    "visit_entry_at",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[1]},
			},
		},
	}
	// VisitorsColumns holds the columns for the "visitors" table.
	VisitorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString, Nullable: true, Size: 11, SchemaType: map[string]string{"postgres": "char(11)"}},
		{Name: "birth_date", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "photo_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VisitorsTable holds the schema information for the "visitors" table.
	VisitorsTable = &schema.Table{
		Name:       "visitors",
		Columns:    VisitorsColumns,
		PrimaryKey: []*schema.Column{VisitorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "visitor_tax_id",
				Unique:  false,
				Columns: []*schema.Column{VisitorsColumns[2]},
			},
			{
				Name:    "visitor_name",
				Unique:  false,
				Columns: []*schema.Column{VisitorsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ScanJobTable,
		VisitsTable,
		VisitorsTable,
	}
)

func init() {
	ScanJobTable.ForeignKeys[0].RefTable = VisitorsTable
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
	VisitsTable.ForeignKeys[0].RefTable = VisitorsTable
	VisitsTable.Annotation = &entsql.Annotation{
		Table: "visits",
	}
	VisitorsTable.Annotation = &entsql.Annotation{
		Table: "visitors",
	}
}
