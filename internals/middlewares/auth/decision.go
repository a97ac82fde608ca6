package auth

import (
	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/constants"
	helper "skysports_backend/internals/helpers"
)

// Rejection ends a request with Status and Body; the chain stops there.
type Rejection struct {
	Status int
	Body   any
}

// Decision is what every gate check returns: either proceed or a Rejection.
// The zero value proceeds.
type Decision struct {
	rejection *Rejection
}

func Proceed() Decision { return Decision{} }

func Reject(status int, body any) Decision {
	return Decision{rejection: &Rejection{Status: status, Body: body}}
}

// Unauthorized covers a missing, malformed, forged or expired credential.
func Unauthorized() Decision {
	return Reject(fiber.StatusUnauthorized, helper.ErrorBody{Error: true, Message: constants.MsgUnauthorized})
}

// Forbidden covers an authenticated caller without the required role.
func Forbidden() Decision {
	return Reject(fiber.StatusForbidden, helper.ErrorBody{Error: true, Message: constants.MsgForbidden})
}

func (d Decision) Rejected() (Rejection, bool) {
	if d.rejection == nil {
		return Rejection{}, false
	}
	return *d.rejection, true
}
