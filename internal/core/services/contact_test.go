package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

type openRecorder struct {
	opened []string
	err    error
}

func (o *openRecorder) open(target string) error {
	o.opened = append(o.opened, target)
	return o.err
}

func TestNewContactService_DefaultOpener(t *testing.T) {
	svc := NewContactService(nil)

	require.NotNil(t, svc)
	assert.NotNil(t, svc.open)
}

func TestContactService_Call(t *testing.T) {
	rec := &openRecorder{}
	svc := NewContactService(rec.open)

	err := svc.Call(context.Background(), " 555 0100 ")

	require.NoError(t, err)
	assert.Equal(t, []string{"tel:5550100"}, rec.opened)
}

func TestContactService_Email(t *testing.T) {
	rec := &openRecorder{}
	svc := NewContactService(rec.open)

	err := svc.Email(context.Background(), "hello@sparkle.test")

	require.NoError(t, err)
	assert.Equal(t, []string{"mailto:hello@sparkle.test"}, rec.opened)
}

func TestContactService_EmptyContact(t *testing.T) {
	rec := &openRecorder{}
	svc := NewContactService(rec.open)

	assert.ErrorIs(t, svc.Call(context.Background(), "  "), domain.ErrNoContact)
	assert.ErrorIs(t, svc.Email(context.Background(), ""), domain.ErrNoContact)
	assert.Empty(t, rec.opened)
}

func TestContactService_OpenError(t *testing.T) {
	boom := errors.New("no handler")
	svc := NewContactService((&openRecorder{err: boom}).open)

	err := svc.Call(context.Background(), "555")

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "tel:555")
}

func TestTelURL(t *testing.T) {
	assert.Equal(t, "tel:+15550100", TelURL("+1 555 0100"))
}

func TestMailtoURL(t *testing.T) {
	assert.Equal(t, "mailto:a@b.test", MailtoURL("a@b.test"))
}
