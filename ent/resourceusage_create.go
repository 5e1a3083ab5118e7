// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/resourceusage"
)

// ResourceUsageCreate is the builder for creating a ResourceUsage entity.
type ResourceUsageCreate struct {
	config
	mutation *ResourceUsageMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ResourceUsageCreate) SetLearnerID(v string) *ResourceUsageCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *ResourceUsageCreate) SetResourceID(v string) *ResourceUsageCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *ResourceUsageCreate) SetResourceType(v string) *ResourceUsageCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ResourceUsageCreate) SetDurationSeconds(v int) *ResourceUsageCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ResourceUsageCreate) SetCompleted(v bool) *ResourceUsageCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ResourceUsageCreate) SetNillableCompleted(v *bool) *ResourceUsageCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *ResourceUsageCreate) SetRating(v int) *ResourceUsageCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ResourceUsageCreate) SetNillableRating(v *int) *ResourceUsageCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *ResourceUsageCreate) SetUsedAt(v time.Time) *ResourceUsageCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceUsageCreate) SetID(v string) *ResourceUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResourceUsageMutation object of the builder.
func (_c *ResourceUsageCreate) Mutation() *ResourceUsageMutation {
	return _c.mutation
}

// Save creates the ResourceUsage in the database.
func (_c *ResourceUsageCreate) Save(ctx context.Context) (*ResourceUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceUsageCreate) SaveX(ctx context.Context) *ResourceUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceUsageCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := resourceusage.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceUsageCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ResourceUsage.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := resourceusage.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "ResourceUsage.resource_id"`)}
	}
	if v, ok := _c.mutation.ResourceID(); ok {
		if err := resourceusage.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "ResourceUsage.resource_type"`)}
	}
	if v, ok := _c.mutation.ResourceType(); ok {
		if err := resourceusage.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "ResourceUsage.duration_seconds"`)}
	}
	if v, ok := _c.mutation.DurationSeconds(); ok {
		if err := resourceusage.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.duration_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ResourceUsage.completed"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := resourceusage.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedAt(); !ok {
		return &ValidationError{Name: "used_at", err: errors.New(`ent: missing required field "ResourceUsage.used_at"`)}
	}
	return nil
}

func (_c *ResourceUsageCreate) sqlSave(ctx context.Context) (*ResourceUsage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ResourceUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResourceUsageCreate) createSpec() (*ResourceUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourceusage.Table, sqlgraph.NewFieldSpec(resourceusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(resourceusage.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(resourceusage.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(resourceusage.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(resourceusage.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(resourceusage.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(resourceusage.FieldRating, field.TypeInt, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(resourceusage.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = value
	}
	return _node, _spec
}

// ResourceUsageCreateBulk is the builder for creating many ResourceUsage entities in bulk.
type ResourceUsageCreateBulk struct {
	config
	err      error
	builders []*ResourceUsageCreate
}

// Save creates the ResourceUsage entities in the database.
func (_c *ResourceUsageCreateBulk) Save(ctx context.Context) ([]*ResourceUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceUsageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResourceUsageCreateBulk) SaveX(ctx context.Context) []*ResourceUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
