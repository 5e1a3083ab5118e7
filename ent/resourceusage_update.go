// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learntrace/ent/predicate"
	"github.com/abhisek/learntrace/ent/resourceusage"
)

// ResourceUsageUpdate is the builder for updating ResourceUsage entities.
type ResourceUsageUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceUsageMutation
}

// Where appends a list predicates to the ResourceUsageUpdate builder.
func (_u *ResourceUsageUpdate) Where(ps ...predicate.ResourceUsage) *ResourceUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ResourceUsageUpdate) SetResourceID(v string) *ResourceUsageUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ResourceUsageUpdate) SetNillableResourceID(v *string) *ResourceUsageUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceUsageUpdate) SetResourceType(v string) *ResourceUsageUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceUsageUpdate) SetNillableResourceType(v *string) *ResourceUsageUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResourceUsageUpdate) SetDurationSeconds(v int) *ResourceUsageUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResourceUsageUpdate) SetNillableDurationSeconds(v *int) *ResourceUsageUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResourceUsageUpdate) AddDurationSeconds(v int) *ResourceUsageUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResourceUsageUpdate) SetCompleted(v bool) *ResourceUsageUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResourceUsageUpdate) SetNillableCompleted(v *bool) *ResourceUsageUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ResourceUsageUpdate) SetRating(v int) *ResourceUsageUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ResourceUsageUpdate) SetNillableRating(v *int) *ResourceUsageUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ResourceUsageUpdate) AddRating(v int) *ResourceUsageUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ResourceUsageUpdate) ClearRating() *ResourceUsageUpdate {
	_u.mutation.ClearRating()
	return _u
}

// Mutation returns the ResourceUsageMutation object of the builder.
func (_u *ResourceUsageUpdate) Mutation() *ResourceUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUsageUpdate) check() error {
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := resourceusage.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceType(); ok {
		if err := resourceusage.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := resourceusage.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.duration_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := resourceusage.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceusage.Table, resourceusage.Columns, sqlgraph.NewFieldSpec(resourceusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(resourceusage.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resourceusage.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(resourceusage.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(resourceusage.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resourceusage.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(resourceusage.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(resourceusage.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(resourceusage.FieldRating, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceUsageUpdateOne is the builder for updating a single ResourceUsage entity.
type ResourceUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceUsageMutation
}

// SetResourceID sets the "resource_id" field.
func (_u *ResourceUsageUpdateOne) SetResourceID(v string) *ResourceUsageUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ResourceUsageUpdateOne) SetNillableResourceID(v *string) *ResourceUsageUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceUsageUpdateOne) SetResourceType(v string) *ResourceUsageUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceUsageUpdateOne) SetNillableResourceType(v *string) *ResourceUsageUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ResourceUsageUpdateOne) SetDurationSeconds(v int) *ResourceUsageUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ResourceUsageUpdateOne) SetNillableDurationSeconds(v *int) *ResourceUsageUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ResourceUsageUpdateOne) AddDurationSeconds(v int) *ResourceUsageUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResourceUsageUpdateOne) SetCompleted(v bool) *ResourceUsageUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResourceUsageUpdateOne) SetNillableCompleted(v *bool) *ResourceUsageUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ResourceUsageUpdateOne) SetRating(v int) *ResourceUsageUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ResourceUsageUpdateOne) SetNillableRating(v *int) *ResourceUsageUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ResourceUsageUpdateOne) AddRating(v int) *ResourceUsageUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ResourceUsageUpdateOne) ClearRating() *ResourceUsageUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// Mutation returns the ResourceUsageMutation object of the builder.
func (_u *ResourceUsageUpdateOne) Mutation() *ResourceUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceUsageUpdate builder.
func (_u *ResourceUsageUpdateOne) Where(ps ...predicate.ResourceUsage) *ResourceUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceUsageUpdateOne) Select(field string, fields ...string) *ResourceUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceUsage entity.
func (_u *ResourceUsageUpdateOne) Save(ctx context.Context) (*ResourceUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUsageUpdateOne) SaveX(ctx context.Context) *ResourceUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUsageUpdateOne) check() error {
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := resourceusage.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceType(); ok {
		if err := resourceusage.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.resource_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := resourceusage.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.duration_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := resourceusage.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ResourceUsage.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUsageUpdateOne) sqlSave(ctx context.Context) (_node *ResourceUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceusage.Table, resourceusage.Columns, sqlgraph.NewFieldSpec(resourceusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourceusage.FieldID)
		for _, f := range fields {
			if !resourceusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourceusage.FieldID {
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
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(resourceusage.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resourceusage.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(resourceusage.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(resourceusage.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resourceusage.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(resourceusage.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(resourceusage.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(resourceusage.FieldRating, field.TypeInt)
	}
	_node = &ResourceUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
