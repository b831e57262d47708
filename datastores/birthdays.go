package datastores

import (
	"time"
)

// upcomingWindow is how many days past the reference day still count as upcoming.
const upcomingWindow = 7

// UpcomingBirthday is a birthday falling inside the upcoming window.
// Date is the anniversary in the reference year.
type UpcomingBirthday struct {
	Name string
	Date time.Time
}

func (u UpcomingBirthday) String() string {
	return u.Name + "'s birthday on " + u.Date.Format(birthdayDisplay)
}

// UpcomingBirthdays returns, in insertion order, the records whose birthday
// falls in ref's month on a day in [ref.Day(), ref.Day()+7]. Only the day of
// month is compared, so the window never spills into the next month.
//
// A 29 February birthday is reported on 28 February in non-leap years.
func (d *Directory) UpcomingBirthdays(ref time.Time) []UpcomingBirthday {
	var upcoming []UpcomingBirthday
	for _, r := range d.records {
		if r.birthday == nil {
			continue
		}
		_, month, day := r.birthday.date.Date()
		if month != ref.Month() || day < ref.Day() || day > ref.Day()+upcomingWindow {
			continue
		}
		upcoming = append(upcoming, UpcomingBirthday{
			Name: r.name,
			Date: anniversary(ref.Year(), month, day),
		})
	}
	return upcoming
}

func anniversary(year int, month time.Month, day int) time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Month() != month { // 29 February in a non-leap year
		date = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return date
}
