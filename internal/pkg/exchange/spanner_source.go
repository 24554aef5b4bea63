package exchange

import (
	"context"
	"math/big"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// SpannerRateSource reads the currencies table.
type SpannerRateSource struct {
	Client *spanner.Client
}

func NewSpannerRateSource(client *spanner.Client) *SpannerRateSource {
	return &SpannerRateSource{Client: client}
}

func (s *SpannerRateSource) LoadRates(ctx context.Context) ([]Currency, error) {
	stmt := spanner.Statement{
		SQL: `SELECT code, rate, is_main FROM currencies ORDER BY code`,
	}

	iter := s.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]Currency, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var (
			code string
			rate spanner.NullNumeric
			main bool
		)
		if err := row.Columns(&code, &rate, &main); err != nil {
			return nil, err
		}

		cur := Currency{Code: code, Main: main}
		if rate.Valid {
			cur.Rate = new(big.Rat).Set(&rate.Numeric)
		}
		out = append(out, cur)
	}
	return out, nil
}
