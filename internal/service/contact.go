package service

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput is one public contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Notifier is the fire-and-forget email relay behind contact submissions.
type Notifier interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// ContactService owns the contact inbox. Messages are created by the
// public form only; the admin surface reads, toggles status and deletes.
type ContactService interface {
	// Submit validates and stores one message (status unread, server
	// timestamp), then relays a notification. Relay failure is logged
	// and never affects the stored record.
	Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error)

	// List returns messages, newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]model.ContactMessage, error)

	// Open returns one message; an unread message transitions to read as
	// a side effect of this first view, exactly once.
	Open(ctx context.Context, id string) (*model.ContactMessage, error)

	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// UnreadCount backs the admin badge's fixed-interval poll.
	UnreadCount(ctx context.Context) (int, error)
}

type contactService struct {
	store    repository.ContentStore
	notifier Notifier
	log      zerolog.Logger
}

// NewContactService constructs a ContactService. The notifier may be a
// disabled relay; it is still called and simply does nothing.
func NewContactService(store repository.ContentStore, notifier Notifier, log zerolog.Logger) ContactService {
	return &contactService{store: store, notifier: notifier, log: log}
}

func (in ContactInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationf("name is required")
	}
	if !emailPattern.MatchString(in.Email) {
		return validationf("a valid email is required")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return validationf("subject is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return validationf("message is required")
	}
	return nil
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec, err := s.store.Create(ctx, model.CollectionContactMessages, map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"subject": in.Subject,
		"message": in.Message,
		"status":  model.ContactStatusUnread,
	})
	if err != nil {
		return nil, err
	}

	// The record is the source of truth; the notification is best effort.
	subject := fmt.Sprintf("New contact message: %s", in.Subject)
	body := fmt.Sprintf(
		"<p><strong>%s</strong> (%s)</p><p>%s</p>",
		html.EscapeString(in.Name),
		html.EscapeString(in.Email),
		html.EscapeString(in.Message),
	)
	if err := s.notifier.Send(ctx, subject, body); err != nil {
		s.log.Warn().Err(err).Str("message_id", rec.ID).Msg("contact notification relay failed")
	}

	var msg model.ContactMessage
	if err := model.Decode(*rec, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) List(ctx context.Context, status string) ([]model.ContactMessage, error) {
	q := repository.ListQuery{OrderField: "timestamp"}
	if status == model.ContactStatusRead || status == model.ContactStatusUnread {
		q.Filter = map[string]any{"status": status}
	}
	records, err := s.store.List(ctx, model.CollectionContactMessages, q)
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.ContactMessage](records)
}

func (s *contactService) Open(ctx context.Context, id string) (*model.ContactMessage, error) {
	rec, err := s.store.Get(ctx, model.CollectionContactMessages, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if rec.StringField("status") == model.ContactStatusUnread {
		rec, err = s.store.Update(ctx, model.CollectionContactMessages, id, map[string]any{
			"status": model.ContactStatusRead,
		})
		if err != nil {
			return nil, mapNoRows(err)
		}
	}

	var msg model.ContactMessage
	if err := model.Decode(*rec, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) SetStatus(ctx context.Context, id, status string) error {
	if status != model.ContactStatusRead && status != model.ContactStatusUnread {
		return validationf("status must be read or unread")
	}
	_, err := s.store.Update(ctx, model.CollectionContactMessages, id, map[string]any{
		"status": status,
	})
	return mapNoRows(err)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, model.CollectionContactMessages, id); err != nil {
		return mapNoRows(err)
	}
	return s.store.Delete(ctx, model.CollectionContactMessages, id)
}

func (s *contactService) UnreadCount(ctx context.Context) (int, error) {
	records, err := s.store.List(ctx, model.CollectionContactMessages, repository.ListQuery{
		Filter: map[string]any{"status": model.ContactStatusUnread},
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
