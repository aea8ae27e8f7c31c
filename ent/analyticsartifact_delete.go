// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/predicate"
)

// AnalyticsArtifactDelete is the builder for deleting a AnalyticsArtifact entity.
type AnalyticsArtifactDelete struct {
	config
	hooks    []Hook
	mutation *AnalyticsArtifactMutation
}

// Where appends a list predicates to the AnalyticsArtifactDelete builder.
func (_d *AnalyticsArtifactDelete) Where(ps ...predicate.AnalyticsArtifact) *AnalyticsArtifactDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalyticsArtifactDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsArtifactDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalyticsArtifactDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analyticsartifact.Table, sqlgraph.NewFieldSpec(analyticsartifact.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalyticsArtifactDeleteOne is the builder for deleting a single AnalyticsArtifact entity.
type AnalyticsArtifactDeleteOne struct {
	_d *AnalyticsArtifactDelete
}

// Where appends a list predicates to the AnalyticsArtifactDelete builder.
func (_d *AnalyticsArtifactDeleteOne) Where(ps ...predicate.AnalyticsArtifact) *AnalyticsArtifactDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalyticsArtifactDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analyticsartifact.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsArtifactDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
