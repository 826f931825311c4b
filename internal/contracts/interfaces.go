package contracts

import "context"

// RawRow is one source row keyed by dataset column header
type RawRow map[string]string

// RecordSource yields the raw rows of the dataset (S0 input)
// ⭐ SSOT: S0 데이터 소스 인터페이스
type RecordSource interface {
	Name() string
	Read(ctx context.Context) ([]RawRow, error)
}

// DatasetProvider hands out the canonical dataset of the session
type DatasetProvider interface {
	Get(ctx context.Context) (*Dataset, error)
}
