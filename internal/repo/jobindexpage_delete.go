// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// JobIndexPageDelete is the builder for deleting a JobIndexPage entity.
type JobIndexPageDelete struct {
	config
	hooks    []Hook
	mutation *JobIndexPageMutation
}

// Where appends a list predicates to the JobIndexPageDelete builder.
func (_d *JobIndexPageDelete) Where(ps ...predicate.JobIndexPage) *JobIndexPageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *JobIndexPageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobIndexPageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *JobIndexPageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobindexpage.Table, sqlgraph.NewFieldSpec(jobindexpage.FieldID, field.TypeUUID))
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

// JobIndexPageDeleteOne is the builder for deleting a single JobIndexPage entity.
type JobIndexPageDeleteOne struct {
	_d *JobIndexPageDelete
}

// Where appends a list predicates to the JobIndexPageDelete builder.
func (_d *JobIndexPageDeleteOne) Where(ps ...predicate.JobIndexPage) *JobIndexPageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *JobIndexPageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobindexpage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobIndexPageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
