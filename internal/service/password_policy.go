package service

import "unicode/utf8"

// minPasswordLength 密码最小长度
const minPasswordLength = 8

type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrPasswordTooShort
}

// Key 返回 i18n 文案键
func (e passwordPolicyError) Key() string {
	return e.key
}

// Args 返回文案参数
func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{minPasswordLength}}
	}
	return nil
}
