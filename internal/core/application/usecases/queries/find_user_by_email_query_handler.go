package queries

import (
	"context"

	"logistics/internal/core/ports"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type FindUserByEmailQueryHandler struct {
	users ports.UserRepository
}

func NewFindUserByEmailQueryHandler(users ports.UserRepository) FindUserByEmailQueryHandler {
	return FindUserByEmailQueryHandler{users: users}
}

func (h FindUserByEmailQueryHandler) Handle(ctx context.Context, query FindUserByEmailQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	u, err := h.users.FindByEmail(ctx, query.Email())
	if err != nil {
		return UserView{}, err
	}

	return UserView{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: openapi_types.Email(u.Email()),
		Role:  string(u.Role()),
	}, nil
}
