// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// BlogAuthorshipDelete is the builder for deleting a BlogAuthorship entity.
type BlogAuthorshipDelete struct {
	config
	hooks    []Hook
	mutation *BlogAuthorshipMutation
}

// Where appends a list predicates to the BlogAuthorshipDelete builder.
func (_d *BlogAuthorshipDelete) Where(ps ...predicate.BlogAuthorship) *BlogAuthorshipDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlogAuthorshipDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogAuthorshipDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlogAuthorshipDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blogauthorship.Table, sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID))
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

// BlogAuthorshipDeleteOne is the builder for deleting a single BlogAuthorship entity.
type BlogAuthorshipDeleteOne struct {
	_d *BlogAuthorshipDelete
}

// Where appends a list predicates to the BlogAuthorshipDelete builder.
func (_d *BlogAuthorshipDeleteOne) Where(ps ...predicate.BlogAuthorship) *BlogAuthorshipDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlogAuthorshipDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blogauthorship.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlogAuthorshipDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
