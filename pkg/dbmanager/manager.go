package dbmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager owns the single database connection and the memoized schema
// description.
type Manager struct {
	db      *gorm.DB
	dbType  string
	fetcher SchemaFetcher

	schemaMu   sync.Mutex
	schemaDesc string
}

// NewManager opens the configured database connection and verifies it with
// a ping. The connection is held for the process lifetime; pooling and
// reconnects are the driver's concern.
func NewManager(cfg Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
		dialector = mysql.Open(dsn)
	case "postgresql":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	log.Printf("Connected to %s database %s at %s:%s", cfg.Type, cfg.Database, cfg.Host, cfg.Port)
	return NewManagerWithDB(db, cfg.Type), nil
}

// NewManagerWithDB wraps an already-open connection. Used by tests and
// callers that manage the connection themselves.
func NewManagerWithDB(db *gorm.DB, dbType string) *Manager {
	m := &Manager{
		db:     db,
		dbType: dbType,
	}
	switch dbType {
	case "mysql":
		m.fetcher = NewMySQLSchemaFetcher(db)
	case "postgresql":
		m.fetcher = NewPostgresSchemaFetcher(db)
	}
	return m
}

// GetSchemaDescription returns the textual schema description for prompt
// grounding. The description is computed lazily on first use and memoized
// for the process lifetime; it never reflects live schema changes.
// Introspection errors are returned to the caller and not cached.
func (m *Manager) GetSchemaDescription(ctx context.Context) (string, error) {
	m.schemaMu.Lock()
	defer m.schemaMu.Unlock()
	return m.schemaDescriptionLocked(ctx)
}

// RefreshSchema drops the memoized description and recomputes it. The rest
// of the pipeline never calls this; it exists so staleness is an explicit
// contract rather than an accident of caching.
func (m *Manager) RefreshSchema(ctx context.Context) (string, error) {
	m.schemaMu.Lock()
	defer m.schemaMu.Unlock()
	m.schemaDesc = ""
	return m.schemaDescriptionLocked(ctx)
}

func (m *Manager) schemaDescriptionLocked(ctx context.Context) (string, error) {
	if m.schemaDesc != "" {
		return m.schemaDesc, nil
	}
	if m.fetcher == nil {
		return "", fmt.Errorf("no schema fetcher registered for database type: %s", m.dbType)
	}

	schema, err := m.fetcher.FetchSchema(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch database schema: %v", err)
	}

	m.schemaDesc = FormatSchemaForLLM(schema)
	return m.schemaDesc, nil
}

// QueryResult is the outcome of one statement execution: rows, a no-rows
// sentinel, or an error record. Exactly one field is set.
type QueryResult struct {
	Rows  []map[string]interface{} `json:"rows,omitempty"`
	Info  string                   `json:"info,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// String renders the result for embedding into the rephrase prompt.
func (r *QueryResult) String() string {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", *r)
	}
	return string(data)
}

// ExecuteQuery runs a sanitized statement and never returns a Go error:
// execution failures become an error record that flows through the pipeline
// as normal data. No retries, no transaction semantics.
func (m *Manager) ExecuteQuery(ctx context.Context, query string) *QueryResult {
	log.Printf("ExecuteQuery -> running SQL: %s", query)

	var rows []map[string]interface{}
	if err := m.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		log.Printf("ExecuteQuery -> execution error: %v", err)
		return &QueryResult{Error: fmt.Sprintf("Query failed: %v", err)}
	}

	if len(rows) == 0 {
		return &QueryResult{Info: "No results found."}
	}
	return &QueryResult{Rows: rows}
}

// Close releases the underlying connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
