// Package committer collects Spanner mutations produced by repositories and
// applies them in a single read-write transaction.
package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered list of mutations. Nil mutations are ignored so
// repositories can return nil for "nothing to write".
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends the non-nil mutations.
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m != nil {
			p.mutations = append(p.mutations, m)
		}
	}
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
