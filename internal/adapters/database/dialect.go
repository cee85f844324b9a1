package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

// Executor is satisfied by *sqlx.DB and *sqlx.Conn. A seeding run hands the
// adapters one *sqlx.Conn so every statement travels over the same connection.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dialect captures what differs between MySQL and Postgres tenant schemas
type dialect struct {
	name         string
	builder      goqu.DialectWrapper
	quote        string
	columnsTable exp.IdentifierExpression
	schemaFilter exp.LiteralExpression
	tableCol     string
	columnCol    string
	returningIDs bool

	indexTable        exp.IdentifierExpression
	indexSchemaFilter exp.LiteralExpression
	indexTableCol     string
	indexNameCol      string
}

func newDialect(name string) (dialect, error) {
	switch name {
	case "mysql":
		return dialect{
			name:         name,
			builder:      goqu.Dialect("mysql"),
			quote:        "`",
			columnsTable: goqu.S("information_schema").Table("COLUMNS"),
			schemaFilter: goqu.L("TABLE_SCHEMA = DATABASE()"),
			tableCol:     "TABLE_NAME",
			columnCol:    "COLUMN_NAME",

			indexTable:        goqu.S("information_schema").Table("STATISTICS"),
			indexSchemaFilter: goqu.L("TABLE_SCHEMA = DATABASE()"),
			indexTableCol:     "TABLE_NAME",
			indexNameCol:      "INDEX_NAME",
		}, nil
	case "postgres":
		return dialect{
			name:         name,
			builder:      goqu.Dialect("postgres"),
			quote:        `"`,
			columnsTable: goqu.S("information_schema").Table("columns"),
			schemaFilter: goqu.L("table_schema = current_schema()"),
			tableCol:     "table_name",
			columnCol:    "column_name",
			returningIDs: true,

			indexTable:        goqu.S("pg_catalog").Table("pg_indexes"),
			indexSchemaFilter: goqu.L("schemaname = current_schema()"),
			indexTableCol:     "tablename",
			indexNameCol:      "indexname",
		}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported dialect %q", name)
	}
}

// ident validates and quotes a developer-supplied identifier for DDL
func (d dialect) ident(name string) (string, error) {
	if !identifierPattern.MatchString(name) {
		return "", fmt.Errorf("invalid identifier %q", name)
	}
	return d.quote + name + d.quote, nil
}
