package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"commerce-dashboard/internal/table"
)

type MySQLSource struct {
	db *sql.DB
}

func OpenMySQL(dsn string) (*MySQLSource, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return &MySQLSource{db: db}, nil
}

func (s *MySQLSource) Fetch(ctx context.Context, name string) (table.Table, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", name))
	if err != nil {
		return table.Empty(), fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return table.Empty(), fmt.Errorf("columns %s: %w", name, err)
	}
	out := table.Table{Header: cols}

	raw := make([]sql.RawBytes, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return table.Empty(), fmt.Errorf("scan %s: %w", name, err)
		}
		rec := make([]string, len(cols))
		for i, rb := range raw {
			rec[i] = string(rb)
		}
		out.Records = append(out.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return table.Empty(), fmt.Errorf("iterate %s: %w", name, err)
	}
	return out, nil
}

func (s *MySQLSource) Close() error {
	return s.db.Close()
}
