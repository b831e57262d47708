package router

import (
	"context"
	"errors"
	"strings"
)

// ErrUnknownCommand is set on [Context.Err] when no handler matches the verb.
var ErrUnknownCommand = errors.New("router: unknown command")

// InvalidCommand is the reply to an empty line or an unknown verb.
const InvalidCommand = "Invalid command."

// HandlerFunc answers a command. The reply is printed even when err is set.
type HandlerFunc = func(ctx context.Context, args []string) (string, error)

// Middleware wraps the dispatch of a command; it must call next to continue.
type Middleware = func(c *Context, next func(*Context))

// Context carries one command through the middleware chain.
type Context struct {
	ctx context.Context

	Verb  string   // lowercased first word of the line
	Route string   // registered verb that matched, empty if none
	Args  []string // remaining words
	Reply string
	Err   error
}

func (c *Context) Context() context.Context { return c.ctx }

// WithValue attaches a value to the context seen by the rest of the chain.
func (c *Context) WithValue(key, val any) { c.ctx = context.WithValue(c.ctx, key, val) }

type Router struct {
	routes      map[string]HandlerFunc
	middlewares []Middleware
}

func New(opts ...func(*Router)) *Router {
	r := &Router{routes: make(map[string]HandlerFunc)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OptUseMiddleware appends middlewares, outermost first.
func OptUseMiddleware(middlewares ...Middleware) func(*Router) {
	return func(r *Router) { r.middlewares = append(r.middlewares, middlewares...) }
}

// OptRegister lets each registrar add its handlers.
func OptRegister(registrars ...interface{ Register(*Router) }) func(*Router) {
	return func(r *Router) {
		for _, registrar := range registrars {
			registrar.Register(r)
		}
	}
}

// Handle registers h for verb; verbs are matched case-insensitively.
// A later registration replaces an earlier one.
func (r *Router) Handle(verb string, h HandlerFunc) {
	r.routes[strings.ToLower(verb)] = h
}

// Has reports whether verb has a handler.
func (r *Router) Has(verb string) bool {
	_, ok := r.routes[strings.ToLower(verb)]
	return ok
}

// Dispatch splits line on white space and runs the matching handler through
// the middleware chain. It always returns a reply.
func (r *Router) Dispatch(ctx context.Context, line string) string {
	c := &Context{ctx: ctx}
	if fields := strings.Fields(line); len(fields) > 0 {
		c.Verb, c.Args = strings.ToLower(fields[0]), fields[1:]
	}
	h, ok := r.routes[c.Verb]
	if ok {
		c.Route = c.Verb
	}

	next := func(c *Context) {
		if !ok {
			c.Reply, c.Err = InvalidCommand, ErrUnknownCommand
			return
		}
		c.Reply, c.Err = h(c.ctx, c.Args)
	}
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		mw, inner := r.middlewares[i], next
		next = func(c *Context) { mw(c, inner) }
	}
	next(c)

	return c.Reply
}
