package datastores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phones(t *testing.T, r *Record) []string {
	t.Helper()
	var s []string
	for _, p := range r.Phones() {
		s = append(s, p.String())
	}
	return s
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", r.Name())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)

	_, err = NewRecord(" ")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestRecordPhones(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)

	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	require.NoError(t, r.AddPhone("1111111111"))
	assert.Equal(t, []string{"1111111111", "2222222222", "1111111111"}, phones(t, r))

	// invalid phone leaves the list unchanged
	require.Error(t, r.AddPhone("123"))
	assert.Len(t, r.Phones(), 3)

	p, ok := r.FindPhone("2222222222")
	require.True(t, ok)
	assert.Equal(t, "2222222222", p.String())
	_, ok = r.FindPhone("9999999999")
	assert.False(t, ok)

	// first match only
	require.NoError(t, r.EditPhone("1111111111", "3333333333"))
	assert.Equal(t, []string{"3333333333", "2222222222", "1111111111"}, phones(t, r))

	require.Error(t, r.EditPhone("2222222222", "bad"))
	assert.Equal(t, []string{"3333333333", "2222222222", "1111111111"}, phones(t, r))

	// no match is not an error, even with an invalid replacement
	require.NoError(t, r.EditPhone("9999999999", "4444444444"))
	require.NoError(t, r.EditPhone("9999999999", "bad"))
	assert.Equal(t, []string{"3333333333", "2222222222", "1111111111"}, phones(t, r))

	require.NoError(t, r.AddPhone("2222222222"))
	r.RemovePhone("2222222222")
	assert.Equal(t, []string{"3333333333", "1111111111"}, phones(t, r))
	r.RemovePhone("9999999999")
	assert.Len(t, r.Phones(), 2)
}

func TestRecordPhonesIsCopy(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("1111111111"))

	ps := r.Phones()
	ps[0] = PhoneNumber{}
	assert.Equal(t, []string{"1111111111"}, phones(t, r))
}

func TestRecordBirthday(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)

	require.NoError(t, r.AddBirthday("17.03.1990"))
	require.NoError(t, r.AddBirthday("18.04.1991"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "18.04.1991", b.String())

	require.Error(t, r.AddBirthday("1991-04-18"))
	b, _ = r.Birthday()
	assert.Equal(t, "18.04.1991", b.String())
}

func TestRecordString(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: Alice, phones: ", r.String())

	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	assert.Equal(t, "Contact name: Alice, phones: 1111111111; 2222222222", r.String())

	require.NoError(t, r.AddBirthday("17.03.1990"))
	assert.Equal(t, "Contact name: Alice, phones: 1111111111; 2222222222, birthday: 17.03.1990", r.String())
}
