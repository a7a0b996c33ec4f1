package mailrelay

// SendRequest тело запроса на отправку письма
type SendRequest struct {
	From       string   `json:"from"`
	SenderName string   `json:"sender_name,omitempty"`
	To         []string `json:"to"`
	ReplyTo    string   `json:"reply_to,omitempty"`
	Subject    string   `json:"subject"`
	HTML       string   `json:"html"`
	Tag        string   `json:"tag,omitempty"`
}

// SendResponse ответ релея
type SendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки релея
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
