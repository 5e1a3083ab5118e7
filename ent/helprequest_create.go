// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/helprequest"
)

// HelpRequestCreate is the builder for creating a HelpRequest entity.
type HelpRequestCreate struct {
	config
	mutation *HelpRequestMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *HelpRequestCreate) SetLearnerID(v string) *HelpRequestCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *HelpRequestCreate) SetRecordID(v string) *HelpRequestCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *HelpRequestCreate) SetQuestion(v string) *HelpRequestCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *HelpRequestCreate) SetCategory(v string) *HelpRequestCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *HelpRequestCreate) SetPriority(v string) *HelpRequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *HelpRequestCreate) SetResolved(v bool) *HelpRequestCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *HelpRequestCreate) SetNillableResolved(v *bool) *HelpRequestCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *HelpRequestCreate) SetRequestedAt(v time.Time) *HelpRequestCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *HelpRequestCreate) SetResolvedAt(v time.Time) *HelpRequestCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *HelpRequestCreate) SetNillableResolvedAt(v *time.Time) *HelpRequestCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HelpRequestCreate) SetID(v string) *HelpRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HelpRequestMutation object of the builder.
func (_c *HelpRequestCreate) Mutation() *HelpRequestMutation {
	return _c.mutation
}

// Save creates the HelpRequest in the database.
func (_c *HelpRequestCreate) Save(ctx context.Context) (*HelpRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HelpRequestCreate) SaveX(ctx context.Context) *HelpRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HelpRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HelpRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HelpRequestCreate) defaults() {
	if _, ok := _c.mutation.Resolved(); !ok {
		v := helprequest.DefaultResolved
		_c.mutation.SetResolved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HelpRequestCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "HelpRequest.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := helprequest.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "HelpRequest.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := helprequest.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "HelpRequest.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := helprequest.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "HelpRequest.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := helprequest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "HelpRequest.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := helprequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "HelpRequest.resolved"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "HelpRequest.requested_at"`)}
	}
	return nil
}

func (_c *HelpRequestCreate) sqlSave(ctx context.Context) (*HelpRequest, error) {
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
			return nil, fmt.Errorf("unexpected HelpRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HelpRequestCreate) createSpec() (*HelpRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &HelpRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(helprequest.Table, sqlgraph.NewFieldSpec(helprequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(helprequest.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(helprequest.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(helprequest.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(helprequest.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(helprequest.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(helprequest.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(helprequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(helprequest.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// HelpRequestCreateBulk is the builder for creating many HelpRequest entities in bulk.
type HelpRequestCreateBulk struct {
	config
	err      error
	builders []*HelpRequestCreate
}

// Save creates the HelpRequest entities in the database.
func (_c *HelpRequestCreateBulk) Save(ctx context.Context) ([]*HelpRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HelpRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HelpRequestMutation)
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
func (_c *HelpRequestCreateBulk) SaveX(ctx context.Context) []*HelpRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HelpRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HelpRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
