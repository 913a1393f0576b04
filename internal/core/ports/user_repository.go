package ports

import (
	"context"

	"logistics/internal/core/domain/model/user"
)

// UserRepository reads users provisioned by the identity provider.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
