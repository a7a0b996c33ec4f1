package send_reminders

import "errors"

var ErrInternal = errors.New("send_reminders: internal error")
