package mailrelay

import "errors"

var (
	// ErrInternal внутренняя ошибка клиента
	ErrInternal = errors.New("mailrelay client: internal error")

	// ErrUnavailable релей недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("mailrelay client: relay unavailable")

	// ErrRejected релей отклонил сообщение
	ErrRejected = errors.New("mailrelay client: message rejected")

	// ErrInvalidResponse некорректный ответ релея
	ErrInvalidResponse = errors.New("mailrelay client: invalid response")
)
