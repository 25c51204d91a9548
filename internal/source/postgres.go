package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"commerce-dashboard/internal/table"
)

// PostgresSource reads tables from a Postgres warehouse holding the same
// six tables the CSV export carries.
type PostgresSource struct {
	conn *pgx.Conn
}

func OpenPostgres(ctx context.Context, dsn string) (*PostgresSource, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresSource{conn: conn}, nil
}

func (s *PostgresSource) Fetch(ctx context.Context, name string) (table.Table, error) {
	rows, err := s.conn.Query(ctx, fmt.Sprintf("SELECT * FROM %s", name))
	if err != nil {
		return table.Empty(), fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	var out table.Table
	for _, fd := range rows.FieldDescriptions() {
		out.Header = append(out.Header, string(fd.Name))
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return table.Empty(), fmt.Errorf("scan %s: %w", name, err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			rec[i] = formatValue(v)
		}
		out.Records = append(out.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return table.Empty(), fmt.Errorf("iterate %s: %w", name, err)
	}
	return out, nil
}

func (s *PostgresSource) Close() error {
	return s.conn.Close(context.Background())
}
