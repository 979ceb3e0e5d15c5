// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/helenb/wagtail-torchbox/internal/repo"
)

// The AdvertFunc type is an adapter to allow the use of ordinary
// function as Advert mutator.
type AdvertFunc func(context.Context, *repo.AdvertMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AdvertFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AdvertMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AdvertMutation", m)
}

// The AdvertPlacementFunc type is an adapter to allow the use of ordinary
// function as AdvertPlacement mutator.
type AdvertPlacementFunc func(context.Context, *repo.AdvertPlacementMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AdvertPlacementFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AdvertPlacementMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AdvertPlacementMutation", m)
}

// The BlogAuthorshipFunc type is an adapter to allow the use of ordinary
// function as BlogAuthorship mutator.
type BlogAuthorshipFunc func(context.Context, *repo.BlogAuthorshipMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f BlogAuthorshipFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.BlogAuthorshipMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.BlogAuthorshipMutation", m)
}

// The BlogIndexPageFunc type is an adapter to allow the use of ordinary
// function as BlogIndexPage mutator.
type BlogIndexPageFunc func(context.Context, *repo.BlogIndexPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f BlogIndexPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.BlogIndexPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.BlogIndexPageMutation", m)
}

// The BlogPageFunc type is an adapter to allow the use of ordinary
// function as BlogPage mutator.
type BlogPageFunc func(context.Context, *repo.BlogPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f BlogPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.BlogPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.BlogPageMutation", m)
}

// The CarouselItemFunc type is an adapter to allow the use of ordinary
// function as CarouselItem mutator.
type CarouselItemFunc func(context.Context, *repo.CarouselItemMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f CarouselItemFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.CarouselItemMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.CarouselItemMutation", m)
}

// The DocumentFunc type is an adapter to allow the use of ordinary
// function as Document mutator.
type DocumentFunc func(context.Context, *repo.DocumentMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f DocumentFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.DocumentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.DocumentMutation", m)
}

// The HomePageFunc type is an adapter to allow the use of ordinary
// function as HomePage mutator.
type HomePageFunc func(context.Context, *repo.HomePageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f HomePageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.HomePageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.HomePageMutation", m)
}

// The ImageFunc type is an adapter to allow the use of ordinary
// function as Image mutator.
type ImageFunc func(context.Context, *repo.ImageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ImageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ImageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ImageMutation", m)
}

// The JobIndexPageFunc type is an adapter to allow the use of ordinary
// function as JobIndexPage mutator.
type JobIndexPageFunc func(context.Context, *repo.JobIndexPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f JobIndexPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.JobIndexPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.JobIndexPageMutation", m)
}

// The JobPageFunc type is an adapter to allow the use of ordinary
// function as JobPage mutator.
type JobPageFunc func(context.Context, *repo.JobPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f JobPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.JobPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.JobPageMutation", m)
}

// The NodeFunc type is an adapter to allow the use of ordinary
// function as Node mutator.
type NodeFunc func(context.Context, *repo.NodeMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f NodeFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.NodeMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.NodeMutation", m)
}

// The PersonIndexPageFunc type is an adapter to allow the use of ordinary
// function as PersonIndexPage mutator.
type PersonIndexPageFunc func(context.Context, *repo.PersonIndexPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f PersonIndexPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.PersonIndexPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.PersonIndexPageMutation", m)
}

// The PersonPageFunc type is an adapter to allow the use of ordinary
// function as PersonPage mutator.
type PersonPageFunc func(context.Context, *repo.PersonPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f PersonPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.PersonPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.PersonPageMutation", m)
}

// The RelatedLinkFunc type is an adapter to allow the use of ordinary
// function as RelatedLink mutator.
type RelatedLinkFunc func(context.Context, *repo.RelatedLinkMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f RelatedLinkFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.RelatedLinkMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.RelatedLinkMutation", m)
}

// The StandardPageFunc type is an adapter to allow the use of ordinary
// function as StandardPage mutator.
type StandardPageFunc func(context.Context, *repo.StandardPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f StandardPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.StandardPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.StandardPageMutation", m)
}

// The TagFunc type is an adapter to allow the use of ordinary
// function as Tag mutator.
type TagFunc func(context.Context, *repo.TagMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TagFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TagMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TagMutation", m)
}

// The WorkIndexPageFunc type is an adapter to allow the use of ordinary
// function as WorkIndexPage mutator.
type WorkIndexPageFunc func(context.Context, *repo.WorkIndexPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f WorkIndexPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.WorkIndexPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.WorkIndexPageMutation", m)
}

// The WorkPageFunc type is an adapter to allow the use of ordinary
// function as WorkPage mutator.
type WorkPageFunc func(context.Context, *repo.WorkPageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f WorkPageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.WorkPageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.WorkPageMutation", m)
}

// The WorkScreenshotFunc type is an adapter to allow the use of ordinary
// function as WorkScreenshot mutator.
type WorkScreenshotFunc func(context.Context, *repo.WorkScreenshotMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f WorkScreenshotFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.WorkScreenshotMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.WorkScreenshotMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, repo.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op repo.Op) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk repo.Hook, cond Condition) repo.Hook {
	return func(next repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(ctx context.Context, m repo.Mutation) (repo.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, repo.Delete|repo.Create)
func On(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, repo.Update|repo.UpdateOne)
func Unless(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) repo.Hook {
	return func(repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(context.Context, repo.Mutation) (repo.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []repo.Hook {
//		return []repo.Hook{
//			Reject(repo.Delete|repo.Update),
//		}
//	}
func Reject(op repo.Op) repo.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []repo.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...repo.Hook) Chain {
	return Chain{append([]repo.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() repo.Hook {
	return func(mutator repo.Mutator) repo.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...repo.Hook) Chain {
	newHooks := make([]repo.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
