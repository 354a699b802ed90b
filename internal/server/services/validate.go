package services

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/taskhub/taskhub/internal/common"
)

func tooLong(field string, limit int) error {
	return common.Invalid(fmt.Sprintf("%s must be at most %d characters", field, limit))
}

func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return tooLong(field, limit)
	}
	return nil
}

func checkEmail(email string, limit int) error {
	if err := checkLength("email", email, limit); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.Invalid("invalid email address")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
