package tracker

import (
	"context"

	"legiswatch/types"
)

// BillSource abstracts a provider of bill records. The live
// Congress.gov client and the mock dataset both implement it; the
// tracker swaps between them without branching on which one it holds.
type BillSource interface {
	SearchByKeyword(ctx context.Context, keyword string, limit int) ([]*types.Bill, error)
	SearchByState(ctx context.Context, state string, limit int) ([]*types.Bill, error)
	Name() string
}
