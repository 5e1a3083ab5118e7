// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/contentinteraction"
	"github.com/abhisek/learntrace/ent/predicate"
)

// ContentInteractionUpdate is the builder for updating ContentInteraction entities.
type ContentInteractionUpdate struct {
	config
	hooks    []Hook
	mutation *ContentInteractionMutation
}

// Where appends a list predicates to the ContentInteractionUpdate builder.
func (_u *ContentInteractionUpdate) Where(ps ...predicate.ContentInteraction) *ContentInteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *ContentInteractionUpdate) SetContentID(v string) *ContentInteractionUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *ContentInteractionUpdate) SetNillableContentID(v *string) *ContentInteractionUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentInteractionUpdate) SetKind(v string) *ContentInteractionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentInteractionUpdate) SetNillableKind(v *string) *ContentInteractionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ContentInteractionUpdate) SetDurationSeconds(v int) *ContentInteractionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ContentInteractionUpdate) SetNillableDurationSeconds(v *int) *ContentInteractionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ContentInteractionUpdate) AddDurationSeconds(v int) *ContentInteractionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ContentInteractionUpdate) SetCompleted(v bool) *ContentInteractionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ContentInteractionUpdate) SetNillableCompleted(v *bool) *ContentInteractionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ContentInteractionMutation object of the builder.
func (_u *ContentInteractionUpdate) Mutation() *ContentInteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentInteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentInteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentInteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentInteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentInteractionUpdate) check() error {
	if v, ok := _u.mutation.ContentID(); ok {
		if err := contentinteraction.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentinteraction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := contentinteraction.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.duration_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentInteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentinteraction.Table, contentinteraction.Columns, sqlgraph.NewFieldSpec(contentinteraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(contentinteraction.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentinteraction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(contentinteraction.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(contentinteraction.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(contentinteraction.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentInteractionUpdateOne is the builder for updating a single ContentInteraction entity.
type ContentInteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentInteractionMutation
}

// SetContentID sets the "content_id" field.
func (_u *ContentInteractionUpdateOne) SetContentID(v string) *ContentInteractionUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *ContentInteractionUpdateOne) SetNillableContentID(v *string) *ContentInteractionUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentInteractionUpdateOne) SetKind(v string) *ContentInteractionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentInteractionUpdateOne) SetNillableKind(v *string) *ContentInteractionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ContentInteractionUpdateOne) SetDurationSeconds(v int) *ContentInteractionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ContentInteractionUpdateOne) SetNillableDurationSeconds(v *int) *ContentInteractionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ContentInteractionUpdateOne) AddDurationSeconds(v int) *ContentInteractionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ContentInteractionUpdateOne) SetCompleted(v bool) *ContentInteractionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ContentInteractionUpdateOne) SetNillableCompleted(v *bool) *ContentInteractionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ContentInteractionMutation object of the builder.
func (_u *ContentInteractionUpdateOne) Mutation() *ContentInteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentInteractionUpdate builder.
func (_u *ContentInteractionUpdateOne) Where(ps ...predicate.ContentInteraction) *ContentInteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentInteractionUpdateOne) Select(field string, fields ...string) *ContentInteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentInteraction entity.
func (_u *ContentInteractionUpdateOne) Save(ctx context.Context) (*ContentInteraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentInteractionUpdateOne) SaveX(ctx context.Context) *ContentInteraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentInteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentInteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentInteractionUpdateOne) check() error {
	if v, ok := _u.mutation.ContentID(); ok {
		if err := contentinteraction.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentinteraction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := contentinteraction.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ContentInteraction.duration_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentInteractionUpdateOne) sqlSave(ctx context.Context) (_node *ContentInteraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentinteraction.Table, contentinteraction.Columns, sqlgraph.NewFieldSpec(contentinteraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentInteraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentinteraction.FieldID)
		for _, f := range fields {
			if !contentinteraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentinteraction.FieldID {
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
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(contentinteraction.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentinteraction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(contentinteraction.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(contentinteraction.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(contentinteraction.FieldCompleted, field.TypeBool, value)
	}
	_node = &ContentInteraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
