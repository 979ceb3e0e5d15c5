// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helenb/wagtail-torchbox/internal/repo/personindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// PersonIndexPageDelete is the builder for deleting a PersonIndexPage entity.
type PersonIndexPageDelete struct {
	config
	hooks    []Hook
	mutation *PersonIndexPageMutation
}

// Where appends a list predicates to the PersonIndexPageDelete builder.
func (_d *PersonIndexPageDelete) Where(ps ...predicate.PersonIndexPage) *PersonIndexPageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PersonIndexPageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonIndexPageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PersonIndexPageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(personindexpage.Table, sqlgraph.NewFieldSpec(personindexpage.FieldID, field.TypeUUID))
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

// PersonIndexPageDeleteOne is the builder for deleting a single PersonIndexPage entity.
type PersonIndexPageDeleteOne struct {
	_d *PersonIndexPageDelete
}

// Where appends a list predicates to the PersonIndexPageDelete builder.
func (_d *PersonIndexPageDeleteOne) Where(ps ...predicate.PersonIndexPage) *PersonIndexPageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PersonIndexPageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{personindexpage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonIndexPageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
