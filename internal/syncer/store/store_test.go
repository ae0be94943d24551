package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyedStub drives getOrCreate with canned select/insert outcomes and
// counts the calls so the insert-then-refetch protocol is observable.
type keyedStub struct {
	selectResults []func() (uuid.UUID, error)
	insertResult  func() (uuid.UUID, error)

	selects int
	inserts int
}

func (s *keyedStub) selectFn() (uuid.UUID, error) {
	fn := s.selectResults[s.selects]
	s.selects++

	return fn()
}

func (s *keyedStub) insertFn() (uuid.UUID, error) {
	s.inserts++

	return s.insertResult()
}

func found(id uuid.UUID) func() (uuid.UUID, error) {
	return func() (uuid.UUID, error) { return id, nil }
}

func miss() (uuid.UUID, error) { return uuid.Nil, sql.ErrNoRows }

func TestGetOrCreate_FoundFirst(t *testing.T) {
	id := uuid.New()
	stub := &keyedStub{selectResults: []func() (uuid.UUID, error){found(id)}}

	tx := &syncTx{}

	got, err := tx.getOrCreate(context.Background(), "order", stub.selectFn, stub.insertFn)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 1, stub.selects)
	assert.Zero(t, stub.inserts)
}

func TestGetOrCreate_InsertWins(t *testing.T) {
	id := uuid.New()
	stub := &keyedStub{
		selectResults: []func() (uuid.UUID, error){miss},
		insertResult:  found(id),
	}

	tx := &syncTx{}

	got, err := tx.getOrCreate(context.Background(), "order", stub.selectFn, stub.insertFn)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 1, stub.inserts)
}

func TestGetOrCreate_LostRaceRefetches(t *testing.T) {
	id := uuid.New()

	// Select misses, the conflict-ignored insert returns no row because a
	// concurrent writer got there first, and the re-select lands on the
	// winner's row.
	stub := &keyedStub{
		selectResults: []func() (uuid.UUID, error){miss, found(id)},
		insertResult:  miss,
	}

	tx := &syncTx{}

	got, err := tx.getOrCreate(context.Background(), "order", stub.selectFn, stub.insertFn)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 2, stub.selects)
	assert.Equal(t, 1, stub.inserts)
}

func TestGetOrCreate_Errors(t *testing.T) {
	boom := errors.New("connection reset")
	fail := func() (uuid.UUID, error) { return uuid.Nil, boom }

	tests := []struct {
		name    string
		stub    *keyedStub
		wantMsg string
	}{
		{
			name:    "select failure",
			stub:    &keyedStub{selectResults: []func() (uuid.UUID, error){fail}},
			wantMsg: "looking up order",
		},
		{
			name: "insert failure",
			stub: &keyedStub{
				selectResults: []func() (uuid.UUID, error){miss},
				insertResult:  fail,
			},
			wantMsg: "inserting order",
		},
		{
			name: "refetch failure",
			stub: &keyedStub{
				selectResults: []func() (uuid.UUID, error){miss, fail},
				insertResult:  miss,
			},
			wantMsg: "re-fetching order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &syncTx{}

			_, err := tx.getOrCreate(context.Background(), "order", tt.stub.selectFn, tt.stub.insertFn)
			require.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestTextArray_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   textArray
	}{
		{name: "plain numbers", in: textArray{"118404", "118405"}},
		{name: "comma inside element", in: textArray{"a,b", "c"}},
		{name: "quotes and backslashes", in: textArray{`say "hi"`, `C:\tmp`}},
		{name: "empty element", in: textArray{"", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.in.Value()
			require.NoError(t, err)

			var out textArray
			require.NoError(t, out.Scan(value))
			assert.Equal(t, []string(tt.in), []string(out))
		})
	}
}

func TestTextArray_Scan(t *testing.T) {
	var out textArray

	require.NoError(t, out.Scan(nil))
	assert.Nil(t, []string(out))

	require.NoError(t, out.Scan("{}"))
	assert.Empty(t, []string(out))

	require.NoError(t, out.Scan([]byte(`{"118404","118405"}`)))
	assert.Equal(t, []string{"118404", "118405"}, []string(out))

	assert.Error(t, out.Scan(42))
	assert.Error(t, out.Scan(`{"unterminated}`))
}
