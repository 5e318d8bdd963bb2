package driving

import "context"

// ContactService hands contact details off to the host environment.
// Both actions are fire-and-forget: a nil error means the hand-off started,
// not that a call or email happened.
type ContactService interface {
	// Call initiates a phone call to the given number.
	Call(ctx context.Context, phone string) error

	// Email opens a new email to the given address.
	Email(ctx context.Context, address string) error
}
