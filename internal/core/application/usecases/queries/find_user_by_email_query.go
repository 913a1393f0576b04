package queries

import (
	"errors"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var ErrFindUserByEmailQueryIsNotConstructed = errors.New(
	"FindUserByEmailQuery must be created via NewFindUserByEmailQuery constructor",
)

type FindUserByEmailQuery struct {
	email string
	guard guard.ConstructorGuard
}

// NewFindUserByEmailQuery normalizes email, so lookups and cache keys are
// case-insensitive.
func NewFindUserByEmailQuery(email string) (FindUserByEmailQuery, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return FindUserByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return FindUserByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q FindUserByEmailQuery) Email() string {
	return q.email
}

func (q FindUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrFindUserByEmailQueryIsNotConstructed)
}

type UserView struct {
	ID    int64               `json:"id"`
	Name  string              `json:"name"`
	Email openapi_types.Email `json:"email"`
	Role  string              `json:"role"`
}
