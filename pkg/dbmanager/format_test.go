package dbmanager

import (
	"strings"
	"testing"
)

func TestFormatSchemaForLLM(t *testing.T) {
	schema := &SchemaInfo{
		Tables: map[string]TableSchema{
			"orders": {
				Name: "orders",
				Columns: map[string]ColumnInfo{
					"orderNumber":    {Name: "orderNumber", Type: "int", IsNullable: false},
					"customerNumber": {Name: "customerNumber", Type: "int", IsNullable: false},
					"status":         {Name: "status", Type: "varchar", IsNullable: false, DefaultValue: "'In Process'"},
				},
				PrimaryKeys: []string{"orderNumber"},
				ForeignKeys: map[string]ForeignKey{
					"orders_ibfk_1": {
						Name:       "orders_ibfk_1",
						ColumnName: "customerNumber",
						RefTable:   "customers",
						RefColumn:  "customerNumber",
					},
				},
			},
			"customers": {
				Name: "customers",
				Columns: map[string]ColumnInfo{
					"customerNumber": {Name: "customerNumber", Type: "int", IsNullable: false},
					"customerName":   {Name: "customerName", Type: "varchar", IsNullable: false},
				},
				PrimaryKeys: []string{"customerNumber"},
			},
		},
	}

	got := FormatSchemaForLLM(schema)

	for _, want := range []string{
		"Current Database Schema:",
		"Table: customers",
		"Table: orders",
		"  - orderNumber (int) NOT NULL PRIMARY KEY",
		"  - status (varchar) NOT NULL DEFAULT 'In Process'",
		"  Foreign Keys:",
		"  - customerNumber -> customers.customerNumber",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted schema missing %q:\n%s", want, got)
		}
	}

	// Tables are emitted in sorted order so the description is stable.
	if strings.Index(got, "Table: customers") > strings.Index(got, "Table: orders") {
		t.Error("tables not sorted")
	}

	// Formatting is deterministic across calls despite map iteration.
	if again := FormatSchemaForLLM(schema); again != got {
		t.Error("FormatSchemaForLLM not deterministic")
	}
}

func TestFormatSchemaForLLMEmpty(t *testing.T) {
	got := FormatSchemaForLLM(&SchemaInfo{Tables: map[string]TableSchema{}})
	if !strings.Contains(got, "Current Database Schema:") {
		t.Errorf("unexpected output for empty schema: %q", got)
	}
}
