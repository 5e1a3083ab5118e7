// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/helprequest"
	"github.com/abhisek/learntrace/ent/predicate"
)

// HelpRequestUpdate is the builder for updating HelpRequest entities.
type HelpRequestUpdate struct {
	config
	hooks    []Hook
	mutation *HelpRequestMutation
}

// Where appends a list predicates to the HelpRequestUpdate builder.
func (_u *HelpRequestUpdate) Where(ps ...predicate.HelpRequest) *HelpRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *HelpRequestUpdate) SetQuestion(v string) *HelpRequestUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *HelpRequestUpdate) SetNillableQuestion(v *string) *HelpRequestUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HelpRequestUpdate) SetCategory(v string) *HelpRequestUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HelpRequestUpdate) SetNillableCategory(v *string) *HelpRequestUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *HelpRequestUpdate) SetPriority(v string) *HelpRequestUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *HelpRequestUpdate) SetNillablePriority(v *string) *HelpRequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *HelpRequestUpdate) SetResolved(v bool) *HelpRequestUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *HelpRequestUpdate) SetNillableResolved(v *bool) *HelpRequestUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *HelpRequestUpdate) SetResolvedAt(v time.Time) *HelpRequestUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *HelpRequestUpdate) SetNillableResolvedAt(v *time.Time) *HelpRequestUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *HelpRequestUpdate) ClearResolvedAt() *HelpRequestUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the HelpRequestMutation object of the builder.
func (_u *HelpRequestUpdate) Mutation() *HelpRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HelpRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HelpRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HelpRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HelpRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HelpRequestUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := helprequest.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := helprequest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := helprequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *HelpRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(helprequest.Table, helprequest.Columns, sqlgraph.NewFieldSpec(helprequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(helprequest.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(helprequest.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(helprequest.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(helprequest.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(helprequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(helprequest.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{helprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HelpRequestUpdateOne is the builder for updating a single HelpRequest entity.
type HelpRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HelpRequestMutation
}

// SetQuestion sets the "question" field.
func (_u *HelpRequestUpdateOne) SetQuestion(v string) *HelpRequestUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *HelpRequestUpdateOne) SetNillableQuestion(v *string) *HelpRequestUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HelpRequestUpdateOne) SetCategory(v string) *HelpRequestUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HelpRequestUpdateOne) SetNillableCategory(v *string) *HelpRequestUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *HelpRequestUpdateOne) SetPriority(v string) *HelpRequestUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *HelpRequestUpdateOne) SetNillablePriority(v *string) *HelpRequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *HelpRequestUpdateOne) SetResolved(v bool) *HelpRequestUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *HelpRequestUpdateOne) SetNillableResolved(v *bool) *HelpRequestUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *HelpRequestUpdateOne) SetResolvedAt(v time.Time) *HelpRequestUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *HelpRequestUpdateOne) SetNillableResolvedAt(v *time.Time) *HelpRequestUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *HelpRequestUpdateOne) ClearResolvedAt() *HelpRequestUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the HelpRequestMutation object of the builder.
func (_u *HelpRequestUpdateOne) Mutation() *HelpRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the HelpRequestUpdate builder.
func (_u *HelpRequestUpdateOne) Where(ps ...predicate.HelpRequest) *HelpRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HelpRequestUpdateOne) Select(field string, fields ...string) *HelpRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HelpRequest entity.
func (_u *HelpRequestUpdateOne) Save(ctx context.Context) (*HelpRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HelpRequestUpdateOne) SaveX(ctx context.Context) *HelpRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HelpRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HelpRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HelpRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := helprequest.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := helprequest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := helprequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "HelpRequest.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *HelpRequestUpdateOne) sqlSave(ctx context.Context) (_node *HelpRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(helprequest.Table, helprequest.Columns, sqlgraph.NewFieldSpec(helprequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HelpRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, helprequest.FieldID)
		for _, f := range fields {
			if !helprequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != helprequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(helprequest.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(helprequest.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(helprequest.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(helprequest.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(helprequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(helprequest.FieldResolvedAt, field.TypeTime)
	}
	_node = &HelpRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{helprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
