package s0_data

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/scout/backend/internal/contracts"
)

// PostgresSource reads the dataset from a table (read-only)
// ⭐ SSOT: 선수 테이블 조회는 여기서만
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource creates a new table source; table may be schema-qualified
func NewPostgresSource(pool *pgxpool.Pool, table string) *PostgresSource {
	return &PostgresSource{pool: pool, table: table}
}

// Name returns the source label used in logs and the load report
func (s *PostgresSource) Name() string {
	return "postgres:" + s.table
}

// playerColumns lists the table columns in scan order
var playerColumns = []string{
	ColID, ColName, ColAge, ColPhoto, ColNationality, ColFlag, ColOverall,
	ColPotential, ColClub, ColValue, ColWage, ColPosition, ColContract,
}

// tableColumns maps column keys to their snake_case table columns
var tableColumns = map[string]string{
	ColContract: "contract_valid_until",
}

func (s *PostgresSource) query() string {
	cols := make([]string, len(playerColumns))
	for i, key := range playerColumns {
		name, ok := tableColumns[key]
		if !ok {
			name = key
		}
		// NULL → '' so the row rules treat it as an empty cell
		cols[i] = fmt.Sprintf("COALESCE(%s::text, '')", pgx.Identifier{name}.Sanitize())
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		strings.Join(cols, ", "),
		pgx.Identifier(strings.Split(s.table, ".")).Sanitize(),
		pgx.Identifier{ColID}.Sanitize(),
	)
}

// Read returns every row of the table in id order
func (s *PostgresSource) Read(ctx context.Context) ([]contracts.RawRow, error) {
	rows, err := s.pool.Query(ctx, s.query())
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", contracts.ErrDataUnavailable, s.table, err)
	}
	defer rows.Close()

	var out []contracts.RawRow
	cells := make([]string, len(playerColumns))
	dest := make([]any, len(playerColumns))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", contracts.ErrDataUnavailable, s.table, err)
		}
		row := make(contracts.RawRow, len(playerColumns))
		for i, key := range playerColumns {
			row[key] = strings.TrimSpace(cells[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", contracts.ErrDataUnavailable, s.table, err)
	}

	return out, nil
}
