package handlers

import (
	"context"
	"strings"
	"time"

	ds "github.com/oaiiae/contacts-bot/datastores"
)

// AddBirthday answers "add-birthday <name> <DD.MM.YYYY>".
func (h *Contacts) AddBirthday(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.addBirthday), args)
}

// ShowBirthday answers "show-birthday <name>".
func (h *Contacts) ShowBirthday(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.showBirthday), args)
}

// Birthdays answers "birthdays".
func (h *Contacts) Birthdays(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.birthdays), args)
}

func (h *Contacts) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Contacts) addBirthday(_ context.Context, args []string) (string, error) {
	err := exactArgs(args, 2, "add-birthday <name> <DD.MM.YYYY>") //nolint: mnd // name, date
	if err != nil {
		return "", err
	}
	name, birthday := args[0], args[1]

	record, ok := h.Store.Find(name)
	if !ok {
		return "", ds.ErrObjectNotFound
	}
	err = record.AddBirthday(birthday)
	if err != nil {
		return "", err
	}
	return "Birthday added for " + name + ".", nil
}

func (h *Contacts) showBirthday(_ context.Context, args []string) (string, error) {
	err := exactArgs(args, 1, "show-birthday <name>")
	if err != nil {
		return "", err
	}
	name := args[0]

	record, ok := h.Store.Find(name)
	if !ok {
		return "", ds.ErrObjectNotFound
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "", ds.ErrNoBirthday
	}
	return name + "'s birthday: " + birthday.String() + ".", nil
}

func (h *Contacts) birthdays(_ context.Context, _ []string) (string, error) {
	upcoming := h.Store.UpcomingBirthdays(h.now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = u.String()
	}
	return strings.Join(lines, "\n"), nil
}
