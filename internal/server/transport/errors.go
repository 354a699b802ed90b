package transport

import (
	"errors"
	"strings"

	"github.com/taskhub/taskhub/internal/common"
)

// Kind is the client-facing category of a service error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindMissingToken
	KindUnauthenticated
	KindConflict
	KindNotFound
)

// Classify maps err onto a Kind. Errors that match no domain sentinel are
// internal.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, common.ErrorMissingToken):
		return KindMissingToken
	case errors.Is(err, common.ErrorValidation):
		return KindInvalid
	case errors.Is(err, common.ErrorUnauthorized):
		return KindUnauthenticated
	case errors.Is(err, common.ErrorAlreadyExists):
		return KindConflict
	case errors.Is(err, common.ErrorNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

var sentinels = []error{
	common.ErrorValidation,
	common.ErrorUnauthorized,
	common.ErrorAlreadyExists,
	common.ErrorNotFound,
}

// Message is the text shown to clients: the detail of a domain error without
// its sentinel prefix, or "internal error".
func Message(err error) string {
	if Classify(err) == KindInternal {
		return common.ErrorInternal.Error()
	}
	msg := err.Error()
	for _, s := range sentinels {
		if detail, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
			return detail
		}
	}
	return msg
}
