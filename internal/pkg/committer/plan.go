// Package committer collects Spanner mutations from repositories into a
// CommitPlan and applies the plan atomically. Repositories never touch the
// client themselves: domain methods mutate the aggregate, repositories turn
// the aggregate into mutations, and the usecase commits the plan in one
// transaction together with its outbox events.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan accumulates the mutations of one logical unit of work.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation. Nil mutations are ignored so repositories can
// return nil when an aggregate has no dirty fields.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddErr appends a mutation produced together with an error, propagating the
// error unchanged. It keeps usecase code flat:
//
//	if err := plan.AddErr(repo.InsertMut(product)); err != nil { ... }
func (cp *CommitPlan) AddErr(mut *spanner.Mutation, err error) error {
	if err != nil {
		return err
	}
	cp.Add(mut)
	return nil
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty reports whether the plan holds no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer applies CommitPlans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// InTransaction runs fn inside a read-write transaction. Usecases that must
// read before they write (the cycle check before a component insert) use this
// so the check and the write land in the same transaction and no concurrent
// mutation can slip in between them.
func (c *Committer) InTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// ApplyWithVersionCheck commits the plan only if the product row still has
// expectedVersion, guarding aggregate updates against lost writes.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, table, id string, expectedVersion int64, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, table, spanner.Key{id}, []string{"version"})
		if err != nil {
			return fmt.Errorf("failed to read current version: %w", err)
		}
		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}
		if current != expectedVersion {
			return fmt.Errorf("version mismatch on %s/%s: expected %d, found %d", table, id, expectedVersion, current)
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("failed to apply commit plan with version check: %w", err)
	}
	return nil
}
