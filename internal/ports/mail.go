package ports

import "context"

// MailSender delivers transactional mail. Failures are surfaced to the
// caller; the ledger does not retry.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
