// Package identity resolves who receives window notifications.
package identity

import "github.com/diegoclair/form-window-bot/internal/domain/entity"

// Static returns a fixed recipient from configuration. Depending on the
// notifier backend this is an email address, a Slack conversation id or a
// Telegram chat id.
type Static struct {
	recipient string
}

func NewStatic(recipient string) Static {
	return Static{recipient: recipient}
}

func (s Static) CurrentUserEmail() (string, error) {
	if s.recipient == "" {
		return "", entity.ErrNoRecipient
	}
	return s.recipient, nil
}
