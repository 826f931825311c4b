package s0_data

import (
	"fmt"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/pkg/config"
	"github.com/wonny/scout/backend/pkg/database"
	"github.com/wonny/scout/backend/pkg/httputil"
)

// NewSource picks the record source configured by DATASET_SOURCE
// db is only needed for the postgres source, client only for http
func NewSource(cfg *config.Config, db *database.DB, client *httputil.Client) (contracts.RecordSource, error) {
	switch cfg.Dataset.Source {
	case config.SourceCSV:
		return NewCSVSource(cfg.Dataset.Path), nil
	case config.SourceXLSX:
		return NewXLSXSource(cfg.Dataset.Path, cfg.Dataset.Sheet), nil
	case config.SourceHTTP:
		if client == nil {
			return nil, fmt.Errorf("http source requires an HTTP client")
		}
		return NewHTTPSource(cfg.Dataset.Path, client), nil
	case config.SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres source requires a database connection")
		}
		return NewPostgresSource(db.Pool, cfg.Dataset.Table), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
