package drill

import "context"

// Quotients holds the floor and ceiling of a single division.
type Quotients struct {
	Floor int64
	Ceil  int64
}

//go:generate mockgen -package mockdrill -source=interface.go -destination=mock/mockdrill.go *
type Service interface {
	ContainsDuplicate(ctx context.Context, values []int64) bool
	Binary(ctx context.Context, n uint64) string
	IsEven(ctx context.Context, n int64) bool
	Divide(ctx context.Context, a, b int64) (Quotients, error)
}
