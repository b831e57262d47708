package handlers

import (
	"context"
	"strings"
	"time"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/router"
)

// Contacts answers the contact and birthday commands against Store.
type Contacts struct {
	Store        *ds.Directory
	Now          func() time.Time // defaults to [time.Now]
	ErrorHandler func(context.Context, error)
}

func (h *Contacts) Register(r *router.Router) {
	r.Handle("add", h.wrap(h.add))
	r.Handle("change", h.wrap(h.change))
	r.Handle("phone", h.wrap(h.phone))
	r.Handle("all", h.wrap(h.all))
	r.Handle("add-birthday", h.wrap(h.addBirthday))
	r.Handle("show-birthday", h.wrap(h.showBirthday))
	r.Handle("birthdays", h.wrap(h.birthdays))
}

func (h *Contacts) wrap(handler handler) handler {
	return handlerWithErrorHandler(handler, h.ErrorHandler)
}

// Add answers "add <name> [phone...]".
func (h *Contacts) Add(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.add), args)
}

// Change answers "change <name> <old phone> <new phone>".
func (h *Contacts) Change(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.change), args)
}

// Phone answers "phone <name>".
func (h *Contacts) Phone(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.phone), args)
}

// All answers "all".
func (h *Contacts) All(ctx context.Context, args []string) string {
	return reply(ctx, h.wrap(h.all), args)
}

// add creates the contact when missing, then appends the phones in order.
// The first invalid phone stops it; phones appended before stay.
func (h *Contacts) add(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", &ArgumentError{Usage: "add <name> [phone...]", Got: len(args)}
	}
	name, phones := args[0], args[1:]

	msg := "Contact updated."
	record, ok := h.Store.Find(name)
	if !ok {
		var err error
		record, err = ds.NewRecord(name)
		if err != nil {
			return "", err
		}
		h.Store.AddRecord(record)
		msg = "Contact added."
	}
	for _, phone := range phones {
		err := record.AddPhone(phone)
		if err != nil {
			return "", err
		}
	}
	return msg, nil
}

// change reports success even when no phone equals the old one.
func (h *Contacts) change(_ context.Context, args []string) (string, error) {
	err := exactArgs(args, 3, "change <name> <old phone> <new phone>") //nolint: mnd // name, old, new
	if err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := h.Store.Find(name)
	if !ok {
		return "", ds.ErrObjectNotFound
	}
	err = record.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	return "Phone number updated for " + name + ".", nil
}

func (h *Contacts) phone(_ context.Context, args []string) (string, error) {
	err := exactArgs(args, 1, "phone <name>")
	if err != nil {
		return "", err
	}
	name := args[0]

	record, ok := h.Store.Find(name)
	if !ok {
		return "", ds.ErrObjectNotFound
	}
	return name + "'s phone numbers: " + joinPhones(record.Phones(), ", ") + ".", nil
}

func (h *Contacts) all(_ context.Context, _ []string) (string, error) {
	if h.Store.Len() == 0 {
		return "Address book is empty.", nil
	}
	records := h.Store.Records()
	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}
