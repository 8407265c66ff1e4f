package dbmanager

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MySQLSchemaFetcher implements schema fetching for MySQL
type MySQLSchemaFetcher struct {
	db *gorm.DB
}

// NewMySQLSchemaFetcher creates a new MySQL schema fetcher
func NewMySQLSchemaFetcher(db *gorm.DB) SchemaFetcher {
	return &MySQLSchemaFetcher{db: db}
}

// FetchSchema retrieves the full database schema
func (f *MySQLSchemaFetcher) FetchSchema(ctx context.Context) (*SchemaInfo, error) {
	schema := &SchemaInfo{
		Tables:    make(map[string]TableSchema),
		UpdatedAt: time.Now(),
	}

	tables, err := f.fetchTables(ctx)
	if err != nil {
		return nil, err
	}

	for _, table := range tables {
		tableSchema := TableSchema{
			Name:        table,
			Columns:     make(map[string]ColumnInfo),
			ForeignKeys: make(map[string]ForeignKey),
		}

		columns, err := f.fetchColumns(ctx, table)
		if err != nil {
			return nil, err
		}
		tableSchema.Columns = columns

		pkeys, err := f.fetchPrimaryKeys(ctx, table)
		if err != nil {
			return nil, err
		}
		tableSchema.PrimaryKeys = pkeys

		fkeys, err := f.fetchForeignKeys(ctx, table)
		if err != nil {
			return nil, err
		}
		tableSchema.ForeignKeys = fkeys

		schema.Tables[table] = tableSchema
	}

	return schema, nil
}

// fetchTables retrieves all tables in the database
func (f *MySQLSchemaFetcher) fetchTables(ctx context.Context) ([]string, error) {
	var tables []string
	query := `
        SELECT table_name
        FROM information_schema.tables
        WHERE table_schema = DATABASE()
        AND table_type = 'BASE TABLE'
        ORDER BY table_name;
    `
	err := f.db.WithContext(ctx).Raw(query).Scan(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %v", err)
	}
	return tables, nil
}

// fetchColumns retrieves all columns for a specific table
func (f *MySQLSchemaFetcher) fetchColumns(ctx context.Context, table string) (map[string]ColumnInfo, error) {
	columns := make(map[string]ColumnInfo)
	var columnList []struct {
		Name         string
		Type         string
		Nullable     string
		DefaultValue string
		Comment      string
	}

	query := `
        SELECT
            column_name AS name,
            data_type AS type,
            is_nullable AS nullable,
            column_default AS default_value,
            column_comment AS comment
        FROM information_schema.columns
        WHERE table_schema = DATABASE()
        AND table_name = ?
        ORDER BY ordinal_position;
    `
	err := f.db.WithContext(ctx).Raw(query, table).Scan(&columnList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch columns for table %s: %v", table, err)
	}

	for _, col := range columnList {
		columns[col.Name] = ColumnInfo{
			Name:         col.Name,
			Type:         col.Type,
			IsNullable:   col.Nullable == "YES",
			DefaultValue: col.DefaultValue,
			Comment:      col.Comment,
		}
	}
	return columns, nil
}

// fetchPrimaryKeys retrieves the primary key columns for a specific table
func (f *MySQLSchemaFetcher) fetchPrimaryKeys(ctx context.Context, table string) ([]string, error) {
	var pkColumns []string
	query := `
        SELECT column_name
        FROM information_schema.key_column_usage
        WHERE table_schema = DATABASE()
        AND table_name = ?
        AND constraint_name = 'PRIMARY'
        ORDER BY ordinal_position;
    `
	err := f.db.WithContext(ctx).Raw(query, table).Scan(&pkColumns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch primary key for table %s: %v", table, err)
	}
	return pkColumns, nil
}

// fetchForeignKeys retrieves all foreign keys for a specific table
func (f *MySQLSchemaFetcher) fetchForeignKeys(ctx context.Context, table string) (map[string]ForeignKey, error) {
	fkeys := make(map[string]ForeignKey)
	var fkList []struct {
		Name       string
		ColumnName string
		RefTable   string
		RefColumn  string
	}

	query := `
        SELECT
            rc.constraint_name AS name,
            kcu.column_name AS column_name,
            kcu.referenced_table_name AS ref_table,
            kcu.referenced_column_name AS ref_column
        FROM information_schema.referential_constraints rc
        JOIN information_schema.key_column_usage kcu
            ON kcu.constraint_name = rc.constraint_name
            AND kcu.constraint_schema = rc.constraint_schema
        WHERE rc.constraint_schema = DATABASE()
        AND kcu.table_name = ?;
    `
	err := f.db.WithContext(ctx).Raw(query, table).Scan(&fkList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch foreign keys for table %s: %v", table, err)
	}

	for _, fk := range fkList {
		fkeys[fk.Name] = ForeignKey{
			Name:       fk.Name,
			ColumnName: fk.ColumnName,
			RefTable:   fk.RefTable,
			RefColumn:  fk.RefColumn,
		}
	}
	return fkeys, nil
}
