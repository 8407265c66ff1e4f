package dbmanager

import (
	"fmt"
	"sort"
	"strings"
)

// FormatSchemaForLLM formats the schema into a LLM-friendly string
func FormatSchemaForLLM(schema *SchemaInfo) string {
	var result strings.Builder
	result.WriteString("Current Database Schema:\n\n")

	// Sort tables for consistent output
	tableNames := make([]string, 0, len(schema.Tables))
	for tableName := range schema.Tables {
		tableNames = append(tableNames, tableName)
	}
	sort.Strings(tableNames)

	for _, tableName := range tableNames {
		table := schema.Tables[tableName]
		result.WriteString(fmt.Sprintf("Table: %s\n", tableName))

		// Sort columns for consistent output
		columnNames := make([]string, 0, len(table.Columns))
		for columnName := range table.Columns {
			columnNames = append(columnNames, columnName)
		}
		sort.Strings(columnNames)

		for _, columnName := range columnNames {
			column := table.Columns[columnName]
			nullable := "NOT NULL"
			if column.IsNullable {
				nullable = "NULL"
			}
			result.WriteString(fmt.Sprintf("  - %s (%s) %s",
				columnName,
				column.Type,
				nullable,
			))

			for _, pk := range table.PrimaryKeys {
				if pk == columnName {
					result.WriteString(" PRIMARY KEY")
					break
				}
			}

			if column.DefaultValue != "" {
				result.WriteString(fmt.Sprintf(" DEFAULT %s", column.DefaultValue))
			}
			if column.Comment != "" {
				result.WriteString(fmt.Sprintf(" -- %s", column.Comment))
			}
			result.WriteString("\n")
		}

		// Add foreign key information
		if len(table.ForeignKeys) > 0 {
			fkNames := make([]string, 0, len(table.ForeignKeys))
			for fkName := range table.ForeignKeys {
				fkNames = append(fkNames, fkName)
			}
			sort.Strings(fkNames)

			result.WriteString("\n  Foreign Keys:\n")
			for _, fkName := range fkNames {
				fk := table.ForeignKeys[fkName]
				result.WriteString(fmt.Sprintf("  - %s -> %s.%s\n",
					fk.ColumnName,
					fk.RefTable,
					fk.RefColumn,
				))
			}
		}
		result.WriteString("\n")
	}

	return result.String()
}
