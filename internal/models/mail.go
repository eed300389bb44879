package models

import "context"

// Mailer delivers account e-mails.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, name, link string) error
}
