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
	"github.com/edforge/readypath/ent/questionevent"
)

// QuestionEventCreate is the builder for creating a QuestionEvent entity.
type QuestionEventCreate struct {
	config
	mutation *QuestionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *QuestionEventCreate) SetSequence(v int64) *QuestionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestionEventCreate) SetTimestamp(v time.Time) *QuestionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableTimestamp(v *time.Time) *QuestionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *QuestionEventCreate) SetProvider(v string) *QuestionEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *QuestionEventCreate) SetModel(v string) *QuestionEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *QuestionEventCreate) SetPurpose(v string) *QuestionEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillablePurpose(v *string) *QuestionEventCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *QuestionEventCreate) SetInputTokens(v int) *QuestionEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableInputTokens(v *int) *QuestionEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *QuestionEventCreate) SetOutputTokens(v int) *QuestionEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableOutputTokens(v *int) *QuestionEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *QuestionEventCreate) SetLatencyMs(v int64) *QuestionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableLatencyMs(v *int64) *QuestionEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *QuestionEventCreate) SetCostUsd(v float64) *QuestionEventCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableCostUsd(v *float64) *QuestionEventCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *QuestionEventCreate) SetSuccess(v bool) *QuestionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QuestionEventCreate) SetErrorMessage(v string) *QuestionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableErrorMessage(v *string) *QuestionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_c *QuestionEventCreate) Mutation() *QuestionEventMutation {
	return _c.mutation
}

// Save creates the QuestionEvent in the database.
func (_c *QuestionEventCreate) Save(ctx context.Context) (*QuestionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionEventCreate) SaveX(ctx context.Context) *QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		v := questionevent.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := questionevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := questionevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := questionevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := questionevent.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "QuestionEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := questionevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "QuestionEvent.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := questionevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "QuestionEvent.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "QuestionEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "QuestionEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "QuestionEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "QuestionEvent.cost_usd"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "QuestionEvent.success"`)}
	}
	return nil
}

func (_c *QuestionEventCreate) sqlSave(ctx context.Context) (*QuestionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionEventCreate) createSpec() (*QuestionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionevent.Table, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(questionevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(questionevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(questionevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(questionevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(questionevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(questionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(questionevent.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(questionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(questionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionEventCreate) OnConflict(opts ...sql.ConflictOption) *QuestionEventUpsertOne {
	_c.conflict = opts
	return &QuestionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionEventCreate) OnConflictColumns(columns ...string) *QuestionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionEventUpsertOne{
		create: _c,
	}
}

type (
	// QuestionEventUpsertOne is the builder for "upsert"-ing
	//  one QuestionEvent node.
	QuestionEventUpsertOne struct {
		create *QuestionEventCreate
	}

	// QuestionEventUpsert is the "OnConflict" setter.
	QuestionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *QuestionEventUpsert) SetProvider(v string) *QuestionEventUpsert {
	u.Set(questionevent.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateProvider() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *QuestionEventUpsert) SetModel(v string) *QuestionEventUpsert {
	u.Set(questionevent.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateModel() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldModel)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *QuestionEventUpsert) SetPurpose(v string) *QuestionEventUpsert {
	u.Set(questionevent.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdatePurpose() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldPurpose)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *QuestionEventUpsert) SetInputTokens(v int) *QuestionEventUpsert {
	u.Set(questionevent.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateInputTokens() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *QuestionEventUpsert) AddInputTokens(v int) *QuestionEventUpsert {
	u.Add(questionevent.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *QuestionEventUpsert) SetOutputTokens(v int) *QuestionEventUpsert {
	u.Set(questionevent.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateOutputTokens() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *QuestionEventUpsert) AddOutputTokens(v int) *QuestionEventUpsert {
	u.Add(questionevent.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *QuestionEventUpsert) SetLatencyMs(v int64) *QuestionEventUpsert {
	u.Set(questionevent.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateLatencyMs() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *QuestionEventUpsert) AddLatencyMs(v int64) *QuestionEventUpsert {
	u.Add(questionevent.FieldLatencyMs, v)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *QuestionEventUpsert) SetCostUsd(v float64) *QuestionEventUpsert {
	u.Set(questionevent.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateCostUsd() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *QuestionEventUpsert) AddCostUsd(v float64) *QuestionEventUpsert {
	u.Add(questionevent.FieldCostUsd, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *QuestionEventUpsert) SetSuccess(v bool) *QuestionEventUpsert {
	u.Set(questionevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateSuccess() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *QuestionEventUpsert) SetErrorMessage(v string) *QuestionEventUpsert {
	u.Set(questionevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QuestionEventUpsert) UpdateErrorMessage() *QuestionEventUpsert {
	u.SetExcluded(questionevent.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QuestionEventUpsert) ClearErrorMessage() *QuestionEventUpsert {
	u.SetNull(questionevent.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionEventUpsertOne) UpdateNewValues() *QuestionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(questionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(questionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionEventUpsertOne) Ignore() *QuestionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionEventUpsertOne) DoNothing() *QuestionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionEventCreate.OnConflict
// documentation for more info.
func (u *QuestionEventUpsertOne) Update(set func(*QuestionEventUpsert)) *QuestionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *QuestionEventUpsertOne) SetProvider(v string) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateProvider() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *QuestionEventUpsertOne) SetModel(v string) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateModel() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *QuestionEventUpsertOne) SetPurpose(v string) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdatePurpose() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *QuestionEventUpsertOne) SetInputTokens(v int) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *QuestionEventUpsertOne) AddInputTokens(v int) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateInputTokens() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *QuestionEventUpsertOne) SetOutputTokens(v int) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *QuestionEventUpsertOne) AddOutputTokens(v int) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateOutputTokens() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *QuestionEventUpsertOne) SetLatencyMs(v int64) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *QuestionEventUpsertOne) AddLatencyMs(v int64) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateLatencyMs() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *QuestionEventUpsertOne) SetCostUsd(v float64) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *QuestionEventUpsertOne) AddCostUsd(v float64) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateCostUsd() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateCostUsd()
	})
}

// SetSuccess sets the "success" field.
func (u *QuestionEventUpsertOne) SetSuccess(v bool) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateSuccess() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QuestionEventUpsertOne) SetErrorMessage(v string) *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QuestionEventUpsertOne) UpdateErrorMessage() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QuestionEventUpsertOne) ClearErrorMessage() *QuestionEventUpsertOne {
	return u.Update(func(s *QuestionEventUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *QuestionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionEventCreateBulk is the builder for creating many QuestionEvent entities in bulk.
type QuestionEventCreateBulk struct {
	config
	err      error
	builders []*QuestionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionEvent entities in the database.
func (_c *QuestionEventCreateBulk) Save(ctx context.Context) ([]*QuestionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionEventMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QuestionEventCreateBulk) SaveX(ctx context.Context) []*QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionEventUpsertBulk {
	_c.conflict = opts
	return &QuestionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionEventCreateBulk) OnConflictColumns(columns ...string) *QuestionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionEventUpsertBulk{
		create: _c,
	}
}

// QuestionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionEvent nodes.
type QuestionEventUpsertBulk struct {
	create *QuestionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionEventUpsertBulk) UpdateNewValues() *QuestionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(questionevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(questionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionEventUpsertBulk) Ignore() *QuestionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionEventUpsertBulk) DoNothing() *QuestionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionEventCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionEventUpsertBulk) Update(set func(*QuestionEventUpsert)) *QuestionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *QuestionEventUpsertBulk) SetProvider(v string) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateProvider() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *QuestionEventUpsertBulk) SetModel(v string) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateModel() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *QuestionEventUpsertBulk) SetPurpose(v string) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdatePurpose() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *QuestionEventUpsertBulk) SetInputTokens(v int) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *QuestionEventUpsertBulk) AddInputTokens(v int) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateInputTokens() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *QuestionEventUpsertBulk) SetOutputTokens(v int) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *QuestionEventUpsertBulk) AddOutputTokens(v int) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateOutputTokens() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *QuestionEventUpsertBulk) SetLatencyMs(v int64) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *QuestionEventUpsertBulk) AddLatencyMs(v int64) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateLatencyMs() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *QuestionEventUpsertBulk) SetCostUsd(v float64) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *QuestionEventUpsertBulk) AddCostUsd(v float64) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateCostUsd() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateCostUsd()
	})
}

// SetSuccess sets the "success" field.
func (u *QuestionEventUpsertBulk) SetSuccess(v bool) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateSuccess() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QuestionEventUpsertBulk) SetErrorMessage(v string) *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QuestionEventUpsertBulk) UpdateErrorMessage() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QuestionEventUpsertBulk) ClearErrorMessage() *QuestionEventUpsertBulk {
	return u.Update(func(s *QuestionEventUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *QuestionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
