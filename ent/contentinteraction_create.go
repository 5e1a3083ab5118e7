// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/contentinteraction"
)

// ContentInteractionCreate is the builder for creating a ContentInteraction entity.
type ContentInteractionCreate struct {
	config
	mutation *ContentInteractionMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ContentInteractionCreate) SetLearnerID(v string) *ContentInteractionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *ContentInteractionCreate) SetContentID(v string) *ContentInteractionCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContentInteractionCreate) SetKind(v string) *ContentInteractionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ContentInteractionCreate) SetDurationSeconds(v int) *ContentInteractionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ContentInteractionCreate) SetCompleted(v bool) *ContentInteractionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ContentInteractionCreate) SetNillableCompleted(v *bool) *ContentInteractionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ContentInteractionCreate) SetOccurredAt(v time.Time) *ContentInteractionCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContentInteractionCreate) SetID(v string) *ContentInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContentInteractionMutation object of the builder.
func (_c *ContentInteractionCreate) Mutation() *ContentInteractionMutation {
	return _c.mutation
}

// Save creates the ContentInteraction in the database.
func (_c *ContentInteractionCreate) Save(ctx context.Context) (*ContentInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentInteractionCreate) SaveX(ctx context.Context) *ContentInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentInteractionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := contentinteraction.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentInteractionCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ContentInteraction.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := contentinteraction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "ContentInteraction.content_id"`)}
	}
	if v, ok := _c.mutation.ContentID(); ok {
		if err := contentinteraction.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.content_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ContentInteraction.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contentinteraction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "ContentInteraction.duration_seconds"`)}
	}
	if v, ok := _c.mutation.DurationSeconds(); ok {
		if err := contentinteraction.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.duration_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ContentInteraction.completed"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ContentInteraction.occurred_at"`)}
	}
	return nil
}

func (_c *ContentInteractionCreate) sqlSave(ctx context.Context) (*ContentInteraction, error) {
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
			return nil, fmt.Errorf("unexpected ContentInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentInteractionCreate) createSpec() (*ContentInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentinteraction.Table, sqlgraph.NewFieldSpec(contentinteraction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(contentinteraction.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(contentinteraction.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contentinteraction.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(contentinteraction.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(contentinteraction.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(contentinteraction.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// ContentInteractionCreateBulk is the builder for creating many ContentInteraction entities in bulk.
type ContentInteractionCreateBulk struct {
	config
	err      error
	builders []*ContentInteractionCreate
}

// Save creates the ContentInteraction entities in the database.
func (_c *ContentInteractionCreateBulk) Save(ctx context.Context) ([]*ContentInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentInteractionMutation)
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
func (_c *ContentInteractionCreateBulk) SaveX(ctx context.Context) []*ContentInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
