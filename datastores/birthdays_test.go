package datastores

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBirthday(t *testing.T, name, birthday string) *Record {
	t.Helper()
	r := mustRecord(t, name)
	require.NoError(t, r.AddBirthday(birthday))
	return r
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestUpcomingBirthdays(t *testing.T) {
	d := NewDirectory(
		withBirthday(t, "Alice", "15.06.1985"),
		withBirthday(t, "Bob", "20.06.1990"),
		mustRecord(t, "Carol"),
		withBirthday(t, "Dave", "10.06.2000"),
		withBirthday(t, "Eve", "17.06.1970"),
		withBirthday(t, "Frank", "09.06.1970"),
		withBirthday(t, "Grace", "12.07.1970"),
	)

	got := d.UpcomingBirthdays(date(2024, time.June, 10))
	want := []UpcomingBirthday{
		{Name: "Alice", Date: date(2024, time.June, 15)},
		{Name: "Dave", Date: date(2024, time.June, 10)},
		{Name: "Eve", Date: date(2024, time.June, 17)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Alice's birthday on 15.06.2024", got[0].String())
}

func TestUpcomingBirthdaysNoMonthRollover(t *testing.T) {
	d := NewDirectory(
		withBirthday(t, "Alice", "30.06.1985"),
		withBirthday(t, "Bob", "02.07.1990"),
	)

	got := d.UpcomingBirthdays(date(2024, time.June, 28))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	d := NewDirectory(withBirthday(t, "Alice", "29.02.2000"))

	got := d.UpcomingBirthdays(date(2025, time.February, 25))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice's birthday on 28.02.2025", got[0].String())

	got = d.UpcomingBirthdays(date(2024, time.February, 25))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice's birthday on 29.02.2024", got[0].String())
}

func TestUpcomingBirthdaysEmpty(t *testing.T) {
	assert.Empty(t, NewDirectory().UpcomingBirthdays(date(2024, time.June, 10)))
}
