package interfaces

import (
	"context"
	"procurehub/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Lookups by email go through the email-index GSI; a zero-value User means
// no document matched.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
