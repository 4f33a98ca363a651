// Package contact implements the contact form action. Submissions are
// validated, handed to a Notifier and acknowledged; nothing is stored.
package contact

import (
	"context"
	"errors"
	"html"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

const (
	msgNameRequired = "Name is required"
	msgInvalidEmail = "Invalid email address"
	msgShortMessage = "Message must be at least %d characters long"
	// SuccessMessage acknowledges an accepted submission.
	SuccessMessage = "Thank you for your message! I'll get back to you soon."
	// FailureMessage is shown when a valid submission could not be handed off.
	FailureMessage = "Something went wrong. Please try again later."
)

const (
	defaultMinMessageLen = 10
	referencePrefix      = "msg_"
)

var tracer trace.Tracer = otel.Tracer("github.com/nailaham15/nailah-s-portfolio/internal/contact")

// Form is the raw user input.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Result is the action outcome, serialised as-is for JSON clients.
type Result struct {
	Success   bool                `json:"success"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Message   string              `json:"message,omitempty"`
	Reference string              `json:"reference,omitempty"`
}

// FieldError returns the first error for field, if any.
func (r Result) FieldError(field string) string {
	if msgs := r.Errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Submission is a validated form ready for hand-off.
type Submission struct {
	Reference  string
	Form       Form
	ReceivedAt time.Time
}

// Notifier receives accepted submissions.
type Notifier interface {
	Notify(ctx context.Context, sub Submission) error
}

// ActionDeps configures an Action. Zero values get defaults.
type ActionDeps struct {
	Notifier      Notifier
	Delay         time.Duration
	MinMessageLen int
	Clock         func() time.Time
	IDGenerator   func() string
}

// Action validates and accepts contact submissions.
type Action struct {
	notifier Notifier
	delay    time.Duration
	minLen   int
	clock    func() time.Time
	newID    func() string
	policy   *bluemonday.Policy
}

// NewAction wires the action dependencies.
func NewAction(deps ActionDeps) (*Action, error) {
	if deps.Notifier == nil {
		return nil, errors.New("contact: notifier is required")
	}
	if deps.Delay < 0 {
		return nil, errors.New("contact: delay must not be negative")
	}
	minLen := deps.MinMessageLen
	if minLen <= 0 {
		minLen = defaultMinMessageLen
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return referencePrefix + ulid.Make().String() }
	}
	return &Action{
		notifier: deps.Notifier,
		delay:    deps.Delay,
		minLen:   minLen,
		clock:    func() time.Time { return clock().UTC() },
		newID:    idGen,
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

// Clean trims every field and strips markup.
func (a *Action) Clean(f Form) Form {
	return Form{
		Name:    a.clean(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: a.clean(f.Message),
	}
}

// the strict policy entity-escapes what it keeps; templates escape again on output
func (a *Action) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(a.policy.Sanitize(strings.TrimSpace(v))))
}

// Validate returns every field error of an already cleaned form.
func (a *Action) Validate(f Form) map[string][]string {
	errs := map[string][]string{}
	if f.Name == "" {
		errs[FieldName] = append(errs[FieldName], msgNameRequired)
	}
	if !validEmail(f.Email) {
		errs[FieldEmail] = append(errs[FieldEmail], msgInvalidEmail)
	}
	if utf8.RuneCountInString(f.Message) < a.minLen {
		errs[FieldMessage] = append(errs[FieldMessage], shortMessage(a.minLen))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit runs the full action. Validation failures are reported in the
// Result with a nil error; a non-nil error means the context ended or the
// notifier failed.
func (a *Action) Submit(ctx context.Context, f Form) (Result, error) {
	ctx, span := tracer.Start(ctx, "contact.Submit")
	defer span.End()

	f = a.Clean(f)
	if errs := a.Validate(f); errs != nil {
		span.SetAttributes(attribute.Bool("contact.valid", false), attribute.Int("contact.errors", len(errs)))
		return Result{Success: false, Errors: errs}, nil
	}

	sub := Submission{Reference: a.newID(), Form: f, ReceivedAt: a.clock()}
	span.SetAttributes(attribute.Bool("contact.valid", true), attribute.String("contact.reference", sub.Reference))

	if err := a.notifier.Notify(ctx, sub); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notify failed")
		return Result{Success: false, Message: FailureMessage}, err
	}

	if err := wait(ctx, a.delay); err != nil {
		span.SetStatus(codes.Error, "cancelled")
		return Result{}, err
	}
	span.SetStatus(codes.Ok, "")
	return Result{Success: true, Message: SuccessMessage, Reference: sub.Reference}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func validEmail(v string) bool {
	if v == "" || strings.ContainsAny(v, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}
	at := strings.LastIndexByte(v, '@')
	domain := v[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
