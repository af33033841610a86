package domain

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"

	// NoticeDismissAfterMs is how long a transient notice stays on screen.
	NoticeDismissAfterMs = 3000
)

type Notice struct {
	Level          string `json:"level"`
	Message        string `json:"message"`
	DismissAfterMs int    `json:"dismiss_after_ms"`
}

func NewNotice(level, message string) Notice {
	return Notice{Level: level, Message: message, DismissAfterMs: NoticeDismissAfterMs}
}
