// Package committer collects Spanner mutations into a commit plan that is
// applied atomically. Repositories build mutations without applying them;
// the store layer gathers related mutations (a review insert plus its
// product aggregate update, for example) and commits them in one
// transaction, so either all writes land or none do.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is a typed collection of Spanner mutations applied as a unit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]*spanner.Mutation, 0)}
}

// Add adds a mutation to the plan. Nil mutations are silently ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer executes commit plans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ReadWriteTransaction runs fn inside a read-write transaction. Used when
// mutations depend on reads, such as the review aggregate recompute.
func (c *Committer) ReadWriteTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return err
	}
	return nil
}
