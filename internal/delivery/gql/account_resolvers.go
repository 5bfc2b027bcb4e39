package gql

import (
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) me(p graphql.ResolveParams) (any, error) {
	return presentUser(authUser(p)), nil
}

func (r *Resolver) userProfile(p graphql.ResolveParams) (any, error) {
	userID, err := idArg(p, "userId")
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrUserNotFound), nil
	}

	user, err := r.accounts.FindByID(p.Context, userID)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrUserNotFound), nil
	}

	return succeeded(map[string]any{"user": presentUser(user)}), nil
}

func (r *Resolver) createAccount(p graphql.ResolveParams) (any, error) {
	var input usecase.CreateAccountInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrAccountCreationFailed), nil
	}

	if _, err := r.accounts.CreateAccount(p.Context, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrAccountCreationFailed), nil
	}

	return succeeded(nil), nil
}

func (r *Resolver) login(p graphql.ResolveParams) (any, error) {
	var input usecase.LoginInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrLoginFailed), nil
	}

	out, err := r.accounts.Login(p.Context, &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrLoginFailed), nil
	}

	return succeeded(map[string]any{"token": out.Token}), nil
}

func (r *Resolver) editProfile(p graphql.ResolveParams) (any, error) {
	var input usecase.EditProfileInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrProfileUpdateFailed), nil
	}

	user, err := r.accounts.EditProfile(p.Context, authUser(p).ID, &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrProfileUpdateFailed), nil
	}

	return succeeded(map[string]any{"user": presentUser(user)}), nil
}

func (r *Resolver) verifyEmail(p graphql.ResolveParams) (any, error) {
	var input struct {
		Code string `json:"code" validate:"required"`
	}
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrVerifyEmailFailed), nil
	}

	if err := r.accounts.VerifyEmail(p.Context, input.Code); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrVerifyEmailFailed), nil
	}

	return succeeded(nil), nil
}
