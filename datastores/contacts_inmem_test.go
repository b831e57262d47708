package datastores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func names(d *Directory) []string {
	var s []string
	for _, r := range d.Records() {
		s = append(s, r.Name())
	}
	return s
}

func TestDirectoryFind(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(mustRecord(t, "Alice"))

	r, ok := d.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", r.Name())
	assert.Empty(t, r.Phones())

	_, ok = d.Find("Bob")
	assert.False(t, ok)
}

func TestDirectoryFindIsMutable(t *testing.T) {
	d := NewDirectory(mustRecord(t, "Alice"))

	r, _ := d.Find("Alice")
	require.NoError(t, r.AddPhone("1234567890"))

	r, _ = d.Find("Alice")
	assert.Len(t, r.Phones(), 1)
}

func TestDirectoryAddRecordOverwrites(t *testing.T) {
	d := NewDirectory(mustRecord(t, "Alice", "1111111111"), mustRecord(t, "Bob"))
	d.AddRecord(mustRecord(t, "Alice", "2222222222"))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"Alice", "Bob"}, names(d))
	r, _ := d.Find("Alice")
	assert.Equal(t, "2222222222", r.Phones()[0].String())
}

func TestDirectoryDelete(t *testing.T) {
	d := NewDirectory(mustRecord(t, "Alice"), mustRecord(t, "Bob"), mustRecord(t, "Carol"))

	d.Delete("Bob")
	d.Delete("Nobody")
	assert.Equal(t, []string{"Alice", "Carol"}, names(d))

	_, ok := d.Find("Bob")
	assert.False(t, ok)
	r, ok := d.Find("Carol")
	require.True(t, ok)
	assert.Equal(t, "Carol", r.Name())

	d.AddRecord(mustRecord(t, "Bob"))
	assert.Equal(t, []string{"Alice", "Carol", "Bob"}, names(d))
}

func TestDirectoryZeroValue(t *testing.T) {
	var d Directory
	assert.Equal(t, 0, d.Len())
	_, ok := d.Find("Alice")
	assert.False(t, ok)
	d.Delete("Alice")

	d.AddRecord(mustRecord(t, "Alice"))
	assert.Equal(t, 1, d.Len())
}
