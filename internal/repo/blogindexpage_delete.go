// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// BlogIndexPageDelete is the builder for deleting a BlogIndexPage entity.
type BlogIndexPageDelete struct {
	config
	hooks    []Hook
	mutation *BlogIndexPageMutation
}

// Where appends a list predicates to the BlogIndexPageDelete builder.
func (_d *BlogIndexPageDelete) Where(ps ...predicate.BlogIndexPage) *BlogIndexPageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlogIndexPageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogIndexPageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlogIndexPageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blogindexpage.Table, sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID))
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

// BlogIndexPageDeleteOne is the builder for deleting a single BlogIndexPage entity.
type BlogIndexPageDeleteOne struct {
	_d *BlogIndexPageDelete
}

// Where appends a list predicates to the BlogIndexPageDelete builder.
func (_d *BlogIndexPageDeleteOne) Where(ps ...predicate.BlogIndexPage) *BlogIndexPageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlogIndexPageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blogindexpage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogIndexPageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
