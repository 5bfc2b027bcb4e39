package gql

import (
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"

	"github.com/graphql-go/graphql"
)

// resourceError surfaces a domain error as a GraphQL error carrying its code.
type resourceError struct {
	*domainerrors.BaseError
}

// Extensions implements gqlerrors.ExtendedError.
func (e resourceError) Extensions() map[string]any {
	return map[string]any{"code": e.ErrorCode()}
}

var errForbiddenResource = resourceError{domainerrors.ErrForbiddenResource}

// guard admits only authenticated users whose role is in roles.
// entity.RoleAny admits every authenticated user. Fields without a guard are public.
func guard(roles entity.Roles, resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		user := deliverycontext.GetUser(p.Context)
		if user == nil || !roles.Admits(user.Role) {
			return nil, errForbiddenResource
		}

		return resolve(p)
	}
}

// authUser returns the user admitted by guard.
func authUser(p graphql.ResolveParams) *entity.User {
	return deliverycontext.GetUser(p.Context)
}

func anyRole() entity.Roles { return entity.Roles{entity.RoleAny} }
