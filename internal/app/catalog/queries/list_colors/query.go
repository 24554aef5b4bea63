package list_colors

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// SpannerListColorsQuery reads the color reference table.
type SpannerListColorsQuery struct {
	Client *spanner.Client
}

func NewSpannerListColorsQuery(client *spanner.Client) *SpannerListColorsQuery {
	return &SpannerListColorsQuery{Client: client}
}

func (q *SpannerListColorsQuery) ColorNames(ctx context.Context) ([]string, error) {
	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: `SELECT name FROM colors`})
	defer iter.Stop()

	out := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var name string
		if err := row.Columns(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
}
