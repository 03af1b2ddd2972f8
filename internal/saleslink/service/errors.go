package service

import (
	"context"
	"errors"
)

// 错误类别，使用 errors.Is 匹配
var (
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrValidationFailure = errors.New("validation failure")
	ErrNotFound          = errors.New("not found")
	ErrDependencyFailure = errors.New("dependency failure")
)

// Error 面向用户的业务错误，Message 已本地化
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Translator 本地化消息
type Translator interface {
	T(ctx context.Context, messageID string, data map[string]interface{}) string
}

func newError(ctx context.Context, tr Translator, kind error, messageID string, data map[string]interface{}) *Error {
	return &Error{Kind: kind, Message: tr.T(ctx, messageID, data)}
}

// ensureOne 单记录校验
func ensureOne(ctx context.Context, tr Translator, model string, ids []string) (string, error) {
	if len(ids) != 1 {
		return "", newError(ctx, tr, ErrInvalidOperation, MsgExpectedSingleton, map[string]interface{}{
			"Model": model,
			"Count": len(ids),
		})
	}
	return ids[0], nil
}
