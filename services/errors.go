package services

import (
	"fmt"
	"net/http"
)

// ValidationError は検証失敗の種別とHTTPステータスを保持します
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrUnknownSite はsiteIdが未指定または未登録の場合のエラーです
	ErrUnknownSite = &ValidationError{Status: http.StatusBadRequest, Message: "unknown siteId"}
	// ErrOriginRejected はOriginヘッダーが許可リストにない場合のエラーです
	ErrOriginRejected = &ValidationError{Status: http.StatusForbidden, Message: "origin not allowed"}
	// ErrInvalidEmail はemailフィールドが形式不正の場合のエラーです
	ErrInvalidEmail = &ValidationError{Status: http.StatusBadRequest, Message: "invalid email"}
)

// ErrMissingField は必須フィールド欠落のエラーを返します
func ErrMissingField(field string) *ValidationError {
	return &ValidationError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("missing required field: %s", field),
	}
}
