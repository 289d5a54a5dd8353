// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/predicate"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/profile"
	"github.com/ecotrack-app/carbon-tracker/gen/ent/utilitybill"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProfile     = "Profile"
	TypeUtilityBill = "UtilityBill"
)

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	region        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	bills         map[uuid.UUID]struct{}
	removedbills  map[uuid.UUID]struct{}
	clearedbills  bool
	done          bool
	oldValue      func(context.Context) (*Profile, error)
	predicates    []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetRegion sets the "region" field.
func (m *ProfileMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ProfileMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *ProfileMutation) ResetRegion() {
	m.region = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBillIDs adds the "bills" edge to the UtilityBill entity by ids.
func (m *ProfileMutation) AddBillIDs(ids ...uuid.UUID) {
	if m.bills == nil {
		m.bills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bills[ids[i]] = struct{}{}
	}
}

// ClearBills clears the "bills" edge to the UtilityBill entity.
func (m *ProfileMutation) ClearBills() {
	m.clearedbills = true
}

// BillsCleared reports if the "bills" edge to the UtilityBill entity was cleared.
func (m *ProfileMutation) BillsCleared() bool {
	return m.clearedbills
}

// RemoveBillIDs removes the "bills" edge to the UtilityBill entity by IDs.
func (m *ProfileMutation) RemoveBillIDs(ids ...uuid.UUID) {
	if m.removedbills == nil {
		m.removedbills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bills, ids[i])
		m.removedbills[ids[i]] = struct{}{}
	}
}

// RemovedBills returns the removed IDs of the "bills" edge to the UtilityBill entity.
func (m *ProfileMutation) RemovedBillsIDs() (ids []uuid.UUID) {
	for id := range m.removedbills {
		ids = append(ids, id)
	}
	return
}

// BillsIDs returns the "bills" edge IDs in the mutation.
func (m *ProfileMutation) BillsIDs() (ids []uuid.UUID) {
	for id := range m.bills {
		ids = append(ids, id)
	}
	return
}

// ResetBills resets all changes to the "bills" edge.
func (m *ProfileMutation) ResetBills() {
	m.bills = nil
	m.clearedbills = false
	m.removedbills = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.region != nil {
		fields = append(fields, profile.FieldRegion)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldRegion:
		return m.Region()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldRegion:
		return m.OldRegion(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldRegion:
		m.ResetRegion()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bills != nil {
		edges = append(edges, profile.EdgeBills)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeBills:
		ids := make([]ent.Value, 0, len(m.bills))
		for id := range m.bills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbills != nil {
		edges = append(edges, profile.EdgeBills)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeBills:
		ids := make([]ent.Value, 0, len(m.removedbills))
		for id := range m.removedbills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbills {
		edges = append(edges, profile.EdgeBills)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeBills:
		return m.clearedbills
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeBills:
		m.ResetBills()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// UtilityBillMutation represents an operation that mutates the UtilityBill nodes in the graph.
type UtilityBillMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	period_start          *time.Time
	period_end            *time.Time
	electricity_usage     *float64
	addelectricity_usage  *float64
	water_usage           *float64
	addwater_usage        *float64
	gas_usage             *float64
	addgas_usage          *float64
	electricity_carbon    *float64
	addelectricity_carbon *float64
	water_carbon          *float64
	addwater_carbon       *float64
	gas_carbon            *float64
	addgas_carbon         *float64
	total_carbon          *float64
	addtotal_carbon       *float64
	input_method          *string
	ocr_confidence        *float32
	addocr_confidence     *float32
	ocr_raw_text          *string
	notes                 *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	profile               *uuid.UUID
	clearedprofile        bool
	done                  bool
	oldValue              func(context.Context) (*UtilityBill, error)
	predicates            []predicate.UtilityBill
}

var _ ent.Mutation = (*UtilityBillMutation)(nil)

// utilitybillOption allows management of the mutation configuration using functional options.
type utilitybillOption func(*UtilityBillMutation)

// newUtilityBillMutation creates new mutation for the UtilityBill entity.
func newUtilityBillMutation(c config, op Op, opts ...utilitybillOption) *UtilityBillMutation {
	m := &UtilityBillMutation{
		config:        c,
		op:            op,
		typ:           TypeUtilityBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUtilityBillID sets the ID field of the mutation.
func withUtilityBillID(id uuid.UUID) utilitybillOption {
	return func(m *UtilityBillMutation) {
		var (
			err   error
			once  sync.Once
			value *UtilityBill
		)
		m.oldValue = func(ctx context.Context) (*UtilityBill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UtilityBill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUtilityBill sets the old UtilityBill of the mutation.
func withUtilityBill(node *UtilityBill) utilitybillOption {
	return func(m *UtilityBillMutation) {
		m.oldValue = func(context.Context) (*UtilityBill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UtilityBillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UtilityBillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UtilityBill entities.
func (m *UtilityBillMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UtilityBillMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UtilityBillMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UtilityBill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *UtilityBillMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *UtilityBillMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *UtilityBillMutation) ResetProfileID() {
	m.profile = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *UtilityBillMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *UtilityBillMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *UtilityBillMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[utilitybill.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *UtilityBillMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *UtilityBillMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, utilitybill.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *UtilityBillMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *UtilityBillMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *UtilityBillMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[utilitybill.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *UtilityBillMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *UtilityBillMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, utilitybill.FieldPeriodEnd)
}

// SetElectricityUsage sets the "electricity_usage" field.
func (m *UtilityBillMutation) SetElectricityUsage(f float64) {
	m.electricity_usage = &f
	m.addelectricity_usage = nil
}

// ElectricityUsage returns the value of the "electricity_usage" field in the mutation.
func (m *UtilityBillMutation) ElectricityUsage() (r float64, exists bool) {
	v := m.electricity_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldElectricityUsage returns the old "electricity_usage" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldElectricityUsage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElectricityUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElectricityUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElectricityUsage: %w", err)
	}
	return oldValue.ElectricityUsage, nil
}

// AddElectricityUsage adds f to the "electricity_usage" field.
func (m *UtilityBillMutation) AddElectricityUsage(f float64) {
	if m.addelectricity_usage != nil {
		*m.addelectricity_usage += f
	} else {
		m.addelectricity_usage = &f
	}
}

// AddedElectricityUsage returns the value that was added to the "electricity_usage" field in this mutation.
func (m *UtilityBillMutation) AddedElectricityUsage() (r float64, exists bool) {
	v := m.addelectricity_usage
	if v == nil {
		return
	}
	return *v, true
}

// ClearElectricityUsage clears the value of the "electricity_usage" field.
func (m *UtilityBillMutation) ClearElectricityUsage() {
	m.electricity_usage = nil
	m.addelectricity_usage = nil
	m.clearedFields[utilitybill.FieldElectricityUsage] = struct{}{}
}

// ElectricityUsageCleared returns if the "electricity_usage" field was cleared in this mutation.
func (m *UtilityBillMutation) ElectricityUsageCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldElectricityUsage]
	return ok
}

// ResetElectricityUsage resets all changes to the "electricity_usage" field.
func (m *UtilityBillMutation) ResetElectricityUsage() {
	m.electricity_usage = nil
	m.addelectricity_usage = nil
	delete(m.clearedFields, utilitybill.FieldElectricityUsage)
}

// SetWaterUsage sets the "water_usage" field.
func (m *UtilityBillMutation) SetWaterUsage(f float64) {
	m.water_usage = &f
	m.addwater_usage = nil
}

// WaterUsage returns the value of the "water_usage" field in the mutation.
func (m *UtilityBillMutation) WaterUsage() (r float64, exists bool) {
	v := m.water_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterUsage returns the old "water_usage" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldWaterUsage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterUsage: %w", err)
	}
	return oldValue.WaterUsage, nil
}

// AddWaterUsage adds f to the "water_usage" field.
func (m *UtilityBillMutation) AddWaterUsage(f float64) {
	if m.addwater_usage != nil {
		*m.addwater_usage += f
	} else {
		m.addwater_usage = &f
	}
}

// AddedWaterUsage returns the value that was added to the "water_usage" field in this mutation.
func (m *UtilityBillMutation) AddedWaterUsage() (r float64, exists bool) {
	v := m.addwater_usage
	if v == nil {
		return
	}
	return *v, true
}

// ClearWaterUsage clears the value of the "water_usage" field.
func (m *UtilityBillMutation) ClearWaterUsage() {
	m.water_usage = nil
	m.addwater_usage = nil
	m.clearedFields[utilitybill.FieldWaterUsage] = struct{}{}
}

// WaterUsageCleared returns if the "water_usage" field was cleared in this mutation.
func (m *UtilityBillMutation) WaterUsageCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldWaterUsage]
	return ok
}

// ResetWaterUsage resets all changes to the "water_usage" field.
func (m *UtilityBillMutation) ResetWaterUsage() {
	m.water_usage = nil
	m.addwater_usage = nil
	delete(m.clearedFields, utilitybill.FieldWaterUsage)
}

// SetGasUsage sets the "gas_usage" field.
func (m *UtilityBillMutation) SetGasUsage(f float64) {
	m.gas_usage = &f
	m.addgas_usage = nil
}

// GasUsage returns the value of the "gas_usage" field in the mutation.
func (m *UtilityBillMutation) GasUsage() (r float64, exists bool) {
	v := m.gas_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldGasUsage returns the old "gas_usage" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldGasUsage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGasUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGasUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGasUsage: %w", err)
	}
	return oldValue.GasUsage, nil
}

// AddGasUsage adds f to the "gas_usage" field.
func (m *UtilityBillMutation) AddGasUsage(f float64) {
	if m.addgas_usage != nil {
		*m.addgas_usage += f
	} else {
		m.addgas_usage = &f
	}
}

// AddedGasUsage returns the value that was added to the "gas_usage" field in this mutation.
func (m *UtilityBillMutation) AddedGasUsage() (r float64, exists bool) {
	v := m.addgas_usage
	if v == nil {
		return
	}
	return *v, true
}

// ClearGasUsage clears the value of the "gas_usage" field.
func (m *UtilityBillMutation) ClearGasUsage() {
	m.gas_usage = nil
	m.addgas_usage = nil
	m.clearedFields[utilitybill.FieldGasUsage] = struct{}{}
}

// GasUsageCleared returns if the "gas_usage" field was cleared in this mutation.
func (m *UtilityBillMutation) GasUsageCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldGasUsage]
	return ok
}

// ResetGasUsage resets all changes to the "gas_usage" field.
func (m *UtilityBillMutation) ResetGasUsage() {
	m.gas_usage = nil
	m.addgas_usage = nil
	delete(m.clearedFields, utilitybill.FieldGasUsage)
}

// SetElectricityCarbon sets the "electricity_carbon" field.
func (m *UtilityBillMutation) SetElectricityCarbon(f float64) {
	m.electricity_carbon = &f
	m.addelectricity_carbon = nil
}

// ElectricityCarbon returns the value of the "electricity_carbon" field in the mutation.
func (m *UtilityBillMutation) ElectricityCarbon() (r float64, exists bool) {
	v := m.electricity_carbon
	if v == nil {
		return
	}
	return *v, true
}

// OldElectricityCarbon returns the old "electricity_carbon" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldElectricityCarbon(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElectricityCarbon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElectricityCarbon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElectricityCarbon: %w", err)
	}
	return oldValue.ElectricityCarbon, nil
}

// AddElectricityCarbon adds f to the "electricity_carbon" field.
func (m *UtilityBillMutation) AddElectricityCarbon(f float64) {
	if m.addelectricity_carbon != nil {
		*m.addelectricity_carbon += f
	} else {
		m.addelectricity_carbon = &f
	}
}

// AddedElectricityCarbon returns the value that was added to the "electricity_carbon" field in this mutation.
func (m *UtilityBillMutation) AddedElectricityCarbon() (r float64, exists bool) {
	v := m.addelectricity_carbon
	if v == nil {
		return
	}
	return *v, true
}

// ResetElectricityCarbon resets all changes to the "electricity_carbon" field.
func (m *UtilityBillMutation) ResetElectricityCarbon() {
	m.electricity_carbon = nil
	m.addelectricity_carbon = nil
}

// SetWaterCarbon sets the "water_carbon" field.
func (m *UtilityBillMutation) SetWaterCarbon(f float64) {
	m.water_carbon = &f
	m.addwater_carbon = nil
}

// WaterCarbon returns the value of the "water_carbon" field in the mutation.
func (m *UtilityBillMutation) WaterCarbon() (r float64, exists bool) {
	v := m.water_carbon
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterCarbon returns the old "water_carbon" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldWaterCarbon(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterCarbon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterCarbon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterCarbon: %w", err)
	}
	return oldValue.WaterCarbon, nil
}

// AddWaterCarbon adds f to the "water_carbon" field.
func (m *UtilityBillMutation) AddWaterCarbon(f float64) {
	if m.addwater_carbon != nil {
		*m.addwater_carbon += f
	} else {
		m.addwater_carbon = &f
	}
}

// AddedWaterCarbon returns the value that was added to the "water_carbon" field in this mutation.
func (m *UtilityBillMutation) AddedWaterCarbon() (r float64, exists bool) {
	v := m.addwater_carbon
	if v == nil {
		return
	}
	return *v, true
}

// ResetWaterCarbon resets all changes to the "water_carbon" field.
func (m *UtilityBillMutation) ResetWaterCarbon() {
	m.water_carbon = nil
	m.addwater_carbon = nil
}

// SetGasCarbon sets the "gas_carbon" field.
func (m *UtilityBillMutation) SetGasCarbon(f float64) {
	m.gas_carbon = &f
	m.addgas_carbon = nil
}

// GasCarbon returns the value of the "gas_carbon" field in the mutation.
func (m *UtilityBillMutation) GasCarbon() (r float64, exists bool) {
	v := m.gas_carbon
	if v == nil {
		return
	}
	return *v, true
}

// OldGasCarbon returns the old "gas_carbon" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldGasCarbon(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGasCarbon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGasCarbon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGasCarbon: %w", err)
	}
	return oldValue.GasCarbon, nil
}

// AddGasCarbon adds f to the "gas_carbon" field.
func (m *UtilityBillMutation) AddGasCarbon(f float64) {
	if m.addgas_carbon != nil {
		*m.addgas_carbon += f
	} else {
		m.addgas_carbon = &f
	}
}

// AddedGasCarbon returns the value that was added to the "gas_carbon" field in this mutation.
func (m *UtilityBillMutation) AddedGasCarbon() (r float64, exists bool) {
	v := m.addgas_carbon
	if v == nil {
		return
	}
	return *v, true
}

// ResetGasCarbon resets all changes to the "gas_carbon" field.
func (m *UtilityBillMutation) ResetGasCarbon() {
	m.gas_carbon = nil
	m.addgas_carbon = nil
}

// SetTotalCarbon sets the "total_carbon" field.
func (m *UtilityBillMutation) SetTotalCarbon(f float64) {
	m.total_carbon = &f
	m.addtotal_carbon = nil
}

// TotalCarbon returns the value of the "total_carbon" field in the mutation.
func (m *UtilityBillMutation) TotalCarbon() (r float64, exists bool) {
	v := m.total_carbon
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCarbon returns the old "total_carbon" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldTotalCarbon(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCarbon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCarbon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCarbon: %w", err)
	}
	return oldValue.TotalCarbon, nil
}

// AddTotalCarbon adds f to the "total_carbon" field.
func (m *UtilityBillMutation) AddTotalCarbon(f float64) {
	if m.addtotal_carbon != nil {
		*m.addtotal_carbon += f
	} else {
		m.addtotal_carbon = &f
	}
}

// AddedTotalCarbon returns the value that was added to the "total_carbon" field in this mutation.
func (m *UtilityBillMutation) AddedTotalCarbon() (r float64, exists bool) {
	v := m.addtotal_carbon
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCarbon resets all changes to the "total_carbon" field.
func (m *UtilityBillMutation) ResetTotalCarbon() {
	m.total_carbon = nil
	m.addtotal_carbon = nil
}

// SetInputMethod sets the "input_method" field.
func (m *UtilityBillMutation) SetInputMethod(s string) {
	m.input_method = &s
}

// InputMethod returns the value of the "input_method" field in the mutation.
func (m *UtilityBillMutation) InputMethod() (r string, exists bool) {
	v := m.input_method
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMethod returns the old "input_method" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldInputMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMethod: %w", err)
	}
	return oldValue.InputMethod, nil
}

// ResetInputMethod resets all changes to the "input_method" field.
func (m *UtilityBillMutation) ResetInputMethod() {
	m.input_method = nil
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *UtilityBillMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *UtilityBillMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *UtilityBillMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *UtilityBillMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *UtilityBillMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[utilitybill.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *UtilityBillMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *UtilityBillMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, utilitybill.FieldOcrConfidence)
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (m *UtilityBillMutation) SetOcrRawText(s string) {
	m.ocr_raw_text = &s
}

// OcrRawText returns the value of the "ocr_raw_text" field in the mutation.
func (m *UtilityBillMutation) OcrRawText() (r string, exists bool) {
	v := m.ocr_raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRawText returns the old "ocr_raw_text" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldOcrRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRawText: %w", err)
	}
	return oldValue.OcrRawText, nil
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (m *UtilityBillMutation) ClearOcrRawText() {
	m.ocr_raw_text = nil
	m.clearedFields[utilitybill.FieldOcrRawText] = struct{}{}
}

// OcrRawTextCleared returns if the "ocr_raw_text" field was cleared in this mutation.
func (m *UtilityBillMutation) OcrRawTextCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldOcrRawText]
	return ok
}

// ResetOcrRawText resets all changes to the "ocr_raw_text" field.
func (m *UtilityBillMutation) ResetOcrRawText() {
	m.ocr_raw_text = nil
	delete(m.clearedFields, utilitybill.FieldOcrRawText)
}

// SetNotes sets the "notes" field.
func (m *UtilityBillMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *UtilityBillMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *UtilityBillMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[utilitybill.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *UtilityBillMutation) NotesCleared() bool {
	_, ok := m.clearedFields[utilitybill.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *UtilityBillMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, utilitybill.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *UtilityBillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UtilityBillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UtilityBillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UtilityBillMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UtilityBillMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UtilityBill entity.
// If the UtilityBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityBillMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UtilityBillMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *UtilityBillMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[utilitybill.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *UtilityBillMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *UtilityBillMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *UtilityBillMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the UtilityBillMutation builder.
func (m *UtilityBillMutation) Where(ps ...predicate.UtilityBill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UtilityBillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UtilityBillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UtilityBill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UtilityBillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UtilityBillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UtilityBill).
func (m *UtilityBillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UtilityBillMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.profile != nil {
		fields = append(fields, utilitybill.FieldProfileID)
	}
	if m.period_start != nil {
		fields = append(fields, utilitybill.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, utilitybill.FieldPeriodEnd)
	}
	if m.electricity_usage != nil {
		fields = append(fields, utilitybill.FieldElectricityUsage)
	}
	if m.water_usage != nil {
		fields = append(fields, utilitybill.FieldWaterUsage)
	}
	if m.gas_usage != nil {
		fields = append(fields, utilitybill.FieldGasUsage)
	}
	if m.electricity_carbon != nil {
		fields = append(fields, utilitybill.FieldElectricityCarbon)
	}
	if m.water_carbon != nil {
		fields = append(fields, utilitybill.FieldWaterCarbon)
	}
	if m.gas_carbon != nil {
		fields = append(fields, utilitybill.FieldGasCarbon)
	}
	if m.total_carbon != nil {
		fields = append(fields, utilitybill.FieldTotalCarbon)
	}
	if m.input_method != nil {
		fields = append(fields, utilitybill.FieldInputMethod)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, utilitybill.FieldOcrConfidence)
	}
	if m.ocr_raw_text != nil {
		fields = append(fields, utilitybill.FieldOcrRawText)
	}
	if m.notes != nil {
		fields = append(fields, utilitybill.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, utilitybill.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, utilitybill.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UtilityBillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case utilitybill.FieldProfileID:
		return m.ProfileID()
	case utilitybill.FieldPeriodStart:
		return m.PeriodStart()
	case utilitybill.FieldPeriodEnd:
		return m.PeriodEnd()
	case utilitybill.FieldElectricityUsage:
		return m.ElectricityUsage()
	case utilitybill.FieldWaterUsage:
		return m.WaterUsage()
	case utilitybill.FieldGasUsage:
		return m.GasUsage()
	case utilitybill.FieldElectricityCarbon:
		return m.ElectricityCarbon()
	case utilitybill.FieldWaterCarbon:
		return m.WaterCarbon()
	case utilitybill.FieldGasCarbon:
		return m.GasCarbon()
	case utilitybill.FieldTotalCarbon:
		return m.TotalCarbon()
	case utilitybill.FieldInputMethod:
		return m.InputMethod()
	case utilitybill.FieldOcrConfidence:
		return m.OcrConfidence()
	case utilitybill.FieldOcrRawText:
		return m.OcrRawText()
	case utilitybill.FieldNotes:
		return m.Notes()
	case utilitybill.FieldCreatedAt:
		return m.CreatedAt()
	case utilitybill.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UtilityBillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case utilitybill.FieldProfileID:
		return m.OldProfileID(ctx)
	case utilitybill.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case utilitybill.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case utilitybill.FieldElectricityUsage:
		return m.OldElectricityUsage(ctx)
	case utilitybill.FieldWaterUsage:
		return m.OldWaterUsage(ctx)
	case utilitybill.FieldGasUsage:
		return m.OldGasUsage(ctx)
	case utilitybill.FieldElectricityCarbon:
		return m.OldElectricityCarbon(ctx)
	case utilitybill.FieldWaterCarbon:
		return m.OldWaterCarbon(ctx)
	case utilitybill.FieldGasCarbon:
		return m.OldGasCarbon(ctx)
	case utilitybill.FieldTotalCarbon:
		return m.OldTotalCarbon(ctx)
	case utilitybill.FieldInputMethod:
		return m.OldInputMethod(ctx)
	case utilitybill.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case utilitybill.FieldOcrRawText:
		return m.OldOcrRawText(ctx)
	case utilitybill.FieldNotes:
		return m.OldNotes(ctx)
	case utilitybill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case utilitybill.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UtilityBill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityBillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case utilitybill.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case utilitybill.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case utilitybill.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case utilitybill.FieldElectricityUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElectricityUsage(v)
		return nil
	case utilitybill.FieldWaterUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterUsage(v)
		return nil
	case utilitybill.FieldGasUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGasUsage(v)
		return nil
	case utilitybill.FieldElectricityCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElectricityCarbon(v)
		return nil
	case utilitybill.FieldWaterCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterCarbon(v)
		return nil
	case utilitybill.FieldGasCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGasCarbon(v)
		return nil
	case utilitybill.FieldTotalCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCarbon(v)
		return nil
	case utilitybill.FieldInputMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMethod(v)
		return nil
	case utilitybill.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case utilitybill.FieldOcrRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRawText(v)
		return nil
	case utilitybill.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case utilitybill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case utilitybill.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UtilityBill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UtilityBillMutation) AddedFields() []string {
	var fields []string
	if m.addelectricity_usage != nil {
		fields = append(fields, utilitybill.FieldElectricityUsage)
	}
	if m.addwater_usage != nil {
		fields = append(fields, utilitybill.FieldWaterUsage)
	}
	if m.addgas_usage != nil {
		fields = append(fields, utilitybill.FieldGasUsage)
	}
	if m.addelectricity_carbon != nil {
		fields = append(fields, utilitybill.FieldElectricityCarbon)
	}
	if m.addwater_carbon != nil {
		fields = append(fields, utilitybill.FieldWaterCarbon)
	}
	if m.addgas_carbon != nil {
		fields = append(fields, utilitybill.FieldGasCarbon)
	}
	if m.addtotal_carbon != nil {
		fields = append(fields, utilitybill.FieldTotalCarbon)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, utilitybill.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UtilityBillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case utilitybill.FieldElectricityUsage:
		return m.AddedElectricityUsage()
	case utilitybill.FieldWaterUsage:
		return m.AddedWaterUsage()
	case utilitybill.FieldGasUsage:
		return m.AddedGasUsage()
	case utilitybill.FieldElectricityCarbon:
		return m.AddedElectricityCarbon()
	case utilitybill.FieldWaterCarbon:
		return m.AddedWaterCarbon()
	case utilitybill.FieldGasCarbon:
		return m.AddedGasCarbon()
	case utilitybill.FieldTotalCarbon:
		return m.AddedTotalCarbon()
	case utilitybill.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityBillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case utilitybill.FieldElectricityUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElectricityUsage(v)
		return nil
	case utilitybill.FieldWaterUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaterUsage(v)
		return nil
	case utilitybill.FieldGasUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGasUsage(v)
		return nil
	case utilitybill.FieldElectricityCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElectricityCarbon(v)
		return nil
	case utilitybill.FieldWaterCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaterCarbon(v)
		return nil
	case utilitybill.FieldGasCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGasCarbon(v)
		return nil
	case utilitybill.FieldTotalCarbon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCarbon(v)
		return nil
	case utilitybill.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown UtilityBill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UtilityBillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(utilitybill.FieldPeriodStart) {
		fields = append(fields, utilitybill.FieldPeriodStart)
	}
	if m.FieldCleared(utilitybill.FieldPeriodEnd) {
		fields = append(fields, utilitybill.FieldPeriodEnd)
	}
	if m.FieldCleared(utilitybill.FieldElectricityUsage) {
		fields = append(fields, utilitybill.FieldElectricityUsage)
	}
	if m.FieldCleared(utilitybill.FieldWaterUsage) {
		fields = append(fields, utilitybill.FieldWaterUsage)
	}
	if m.FieldCleared(utilitybill.FieldGasUsage) {
		fields = append(fields, utilitybill.FieldGasUsage)
	}
	if m.FieldCleared(utilitybill.FieldOcrConfidence) {
		fields = append(fields, utilitybill.FieldOcrConfidence)
	}
	if m.FieldCleared(utilitybill.FieldOcrRawText) {
		fields = append(fields, utilitybill.FieldOcrRawText)
	}
	if m.FieldCleared(utilitybill.FieldNotes) {
		fields = append(fields, utilitybill.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UtilityBillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UtilityBillMutation) ClearField(name string) error {
	switch name {
	case utilitybill.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case utilitybill.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case utilitybill.FieldElectricityUsage:
		m.ClearElectricityUsage()
		return nil
	case utilitybill.FieldWaterUsage:
		m.ClearWaterUsage()
		return nil
	case utilitybill.FieldGasUsage:
		m.ClearGasUsage()
		return nil
	case utilitybill.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case utilitybill.FieldOcrRawText:
		m.ClearOcrRawText()
		return nil
	case utilitybill.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown UtilityBill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UtilityBillMutation) ResetField(name string) error {
	switch name {
	case utilitybill.FieldProfileID:
		m.ResetProfileID()
		return nil
	case utilitybill.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case utilitybill.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case utilitybill.FieldElectricityUsage:
		m.ResetElectricityUsage()
		return nil
	case utilitybill.FieldWaterUsage:
		m.ResetWaterUsage()
		return nil
	case utilitybill.FieldGasUsage:
		m.ResetGasUsage()
		return nil
	case utilitybill.FieldElectricityCarbon:
		m.ResetElectricityCarbon()
		return nil
	case utilitybill.FieldWaterCarbon:
		m.ResetWaterCarbon()
		return nil
	case utilitybill.FieldGasCarbon:
		m.ResetGasCarbon()
		return nil
	case utilitybill.FieldTotalCarbon:
		m.ResetTotalCarbon()
		return nil
	case utilitybill.FieldInputMethod:
		m.ResetInputMethod()
		return nil
	case utilitybill.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case utilitybill.FieldOcrRawText:
		m.ResetOcrRawText()
		return nil
	case utilitybill.FieldNotes:
		m.ResetNotes()
		return nil
	case utilitybill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case utilitybill.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UtilityBill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UtilityBillMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, utilitybill.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UtilityBillMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case utilitybill.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UtilityBillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UtilityBillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UtilityBillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, utilitybill.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UtilityBillMutation) EdgeCleared(name string) bool {
	switch name {
	case utilitybill.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UtilityBillMutation) ClearEdge(name string) error {
	switch name {
	case utilitybill.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown UtilityBill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UtilityBillMutation) ResetEdge(name string) error {
	switch name {
	case utilitybill.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown UtilityBill edge %s", name)
}
