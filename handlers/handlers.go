package handlers

import (
	"context"
	"errors"
	"strings"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/router"
)

type handler = router.HandlerFunc

// ArgumentError reports a command called with the wrong arguments.
type ArgumentError struct {
	Usage string
	Got   int
}

func (e *ArgumentError) Error() string {
	return "Invalid arguments. Usage: " + e.Usage
}

// exactArgs returns an [*ArgumentError] unless len(args) == n.
func exactArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return &ArgumentError{Usage: usage, Got: len(args)}
	}
	return nil
}

// handlerWithErrorHandler turns the error of handler into the reply and
// reports it to do. The error is still returned for middlewares.
func handlerWithErrorHandler(handler handler, do func(context.Context, error)) handler {
	return func(ctx context.Context, args []string) (string, error) {
		reply, err := handler(ctx, args)
		if err != nil {
			reply = Message(err)
			if do != nil {
				do(ctx, err)
			}
		}
		return reply, err
	}
}

// reply runs handler and keeps only the message.
func reply(ctx context.Context, handler handler, args []string) string {
	msg, _ := handler(ctx, args)
	return msg
}

// Message is the text shown to the user for err.
func Message(err error) string {
	var validationErr *ds.ValidationError
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return "Contact not found."
	case errors.Is(err, ds.ErrNoBirthday):
		return "Birthday not found."
	case errors.As(err, &validationErr):
		return validationErr.Msg
	default:
		return err.Error()
	}
}

// Status classifies err for metrics and logs.
func Status(err error) string {
	var (
		validationErr *ds.ValidationError
		argumentErr   *ArgumentError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ds.ErrObjectNotFound), errors.Is(err, ds.ErrNoBirthday):
		return "not_found"
	case errors.As(err, &validationErr), errors.As(err, &argumentErr):
		return "invalid"
	case errors.Is(err, router.ErrUnknownCommand):
		return "unknown"
	default:
		return "error"
	}
}

func joinPhones(phones []ds.PhoneNumber, sep string) string {
	s := make([]string, len(phones))
	for i, p := range phones {
		s[i] = p.String()
	}
	return strings.Join(s, sep)
}
