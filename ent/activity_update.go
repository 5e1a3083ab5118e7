// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/activity"
	"github.com/abhisek/learntrace/ent/predicate"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ActivityUpdate) SetTopicID(v string) *ActivityUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableTopicID(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ActivityUpdate) SetTitle(v string) *ActivityUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableTitle(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityUpdate) SetKind(v string) *ActivityUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableKind(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityUpdate) SetDifficulty(v string) *ActivityUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDifficulty(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *ActivityUpdate) SetEstimatedMinutes(v int) *ActivityUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableEstimatedMinutes(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *ActivityUpdate) AddEstimatedMinutes(v int) *ActivityUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *ActivityUpdate) SetOrdinal(v int) *ActivityUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableOrdinal(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *ActivityUpdate) AddOrdinal(v int) *ActivityUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetRequired sets the "required" field.
func (_u *ActivityUpdate) SetRequired(v bool) *ActivityUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableRequired(v *bool) *ActivityUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := activity.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Activity.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := activity.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Activity.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Activity.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := activity.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Activity.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := activity.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Activity.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := activity.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "Activity.ordinal": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(activity.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(activity.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activity.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activity.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(activity.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(activity.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(activity.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(activity.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(activity.FieldRequired, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *ActivityUpdateOne) SetTopicID(v string) *ActivityUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableTopicID(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ActivityUpdateOne) SetTitle(v string) *ActivityUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableTitle(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityUpdateOne) SetKind(v string) *ActivityUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableKind(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityUpdateOne) SetDifficulty(v string) *ActivityUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDifficulty(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *ActivityUpdateOne) SetEstimatedMinutes(v int) *ActivityUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableEstimatedMinutes(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *ActivityUpdateOne) AddEstimatedMinutes(v int) *ActivityUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *ActivityUpdateOne) SetOrdinal(v int) *ActivityUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableOrdinal(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *ActivityUpdateOne) AddOrdinal(v int) *ActivityUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetRequired sets the "required" field.
func (_u *ActivityUpdateOne) SetRequired(v bool) *ActivityUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableRequired(v *bool) *ActivityUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := activity.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Activity.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := activity.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Activity.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Activity.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := activity.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Activity.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMinutes(); ok {
		if err := activity.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Activity.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := activity.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "Activity.ordinal": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(activity.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(activity.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activity.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activity.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(activity.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(activity.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(activity.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(activity.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(activity.FieldRequired, field.TypeBool, value)
	}
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
