package dbmanager

import (
	"context"
	"time"
)

// Config holds the connection settings for the one database this process
// serves.
type Config struct {
	Type     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// SchemaInfo describes the database structure used to ground SQL generation.
type SchemaInfo struct {
	Tables    map[string]TableSchema
	UpdatedAt time.Time
}

type TableSchema struct {
	Name        string
	Columns     map[string]ColumnInfo
	PrimaryKeys []string
	ForeignKeys map[string]ForeignKey
}

type ColumnInfo struct {
	Name         string
	Type         string
	IsNullable   bool
	DefaultValue string
	Comment      string
}

type ForeignKey struct {
	Name       string
	ColumnName string
	RefTable   string
	RefColumn  string
}

// SchemaFetcher retrieves the full schema for one database engine.
type SchemaFetcher interface {
	FetchSchema(ctx context.Context) (*SchemaInfo, error)
}
