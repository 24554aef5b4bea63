package contracts

import (
	"context"

	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// Committer applies a mutation plan atomically. Usecases depend on this
// instead of the Spanner client.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
