package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/catalog-engine/internal/logging"
)

// ErrConflict is returned when a mutation hits an existing primary key or unique index entry.
var ErrConflict = errors.New("committer: row already exists")

// Adapter applies plans against Spanner.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply buffers every mutation of plan in one read-write transaction.
// An empty plan is a no-op.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return errors.New("committer: spanner client is nil")
	}

	commitTS, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return fmt.Errorf("committer: apply %d mutations: %w", plan.Len(), err)
	}

	logging.Ctx(ctx).Debug().
		Int("mutations", plan.Len()).
		Time("commit_ts", commitTS).
		Msg("plan committed")
	return nil
}
