package bbb

import "fmt"

const (
	ReturnSuccess = "SUCCESS"
	ReturnFailed  = "FAILED"
)

// 常见的 messageKey
const (
	KeyNoRecordings    = "noRecordings"
	KeyChecksumError   = "checksumError"
	KeyNotFound        = "notFound"
	KeyMissingParam    = "missingParam"
	KeyInvalidMeeting  = "invalidMeetingIdentifier"
	KeyUnsupportedCall = "unsupportedRequest"
)

// FixedHeader 所有 BBB 响应的公共字段
type FixedHeader struct {
	ReturnCode string `xml:"returncode"`
	MessageKey string `xml:"messageKey"`
	Message    string `xml:"message"`
}

// Error BBB 返回 FAILED 时的错误
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bbb: %s: %s", e.Key, e.Message)
}

// ErrHandle 将响应头转换为错误，SUCCESS 返回 nil
func (h FixedHeader) ErrHandle() error {
	if h.ReturnCode == ReturnSuccess {
		return nil
	}
	return &Error{Key: h.MessageKey, Message: h.Message}
}
