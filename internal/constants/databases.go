package constants

const (
	DatabaseTypeMySQL      = "mysql"
	DatabaseTypePostgreSQL = "postgresql"
)

// DatabaseDisplayName maps a database type to the dialect name used in
// prompts, e.g. "write a valid MySQL query".
func DatabaseDisplayName(dbType string) string {
	switch dbType {
	case DatabaseTypeMySQL:
		return "MySQL"
	case DatabaseTypePostgreSQL:
		return "PostgreSQL"
	default:
		return "SQL"
	}
}
