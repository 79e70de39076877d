package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tasche-dev/tasche/internal/api/domain"
	"github.com/tasche-dev/tasche/internal/api/store"
	"github.com/tasche-dev/tasche/pkg/auth0"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id (the provider subject).
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateTimezone sets the user's IANA timezone.
func (s *UserService) UpdateTimezone(ctx context.Context, userID, timezone string) error {
	return s.Store.Users().UpdateTimezone(ctx, userID, timezone)
}

// UpsertFromProfile creates or refreshes the user record for a provider
// identity. The lookup and write happen in one transaction so two
// concurrent logins for the same subject cannot race into a duplicate.
//
// On update only the display name and picture move; email is fixed at
// creation and the timezone belongs to the user, not the provider.
func (s *UserService) UpsertFromProfile(ctx context.Context, p *auth0.Profile) (domain.User, error) {
	var out domain.User

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		name := displayName(p)
		picture := optional(p.Picture)

		existing, err := tx.Users().GetUserByID(ctx, p.Sub)
		switch {
		case err == nil:
			if err := tx.Users().UpdateProfile(ctx, existing.ID, name, picture); err != nil {
				return err
			}
			out = existing
			out.Name = name
			out.Picture = picture
			return nil

		case errors.Is(err, store.ErrNotFound):
			u := domain.User{
				ID:       p.Sub,
				Email:    p.Email,
				Name:     name,
				Picture:  picture,
				Timezone: domain.DefaultTimezone,
			}
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			created, err := tx.Users().GetUserByID(ctx, p.Sub)
			if err != nil {
				return err
			}
			out = created
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// displayName picks a human name for the account. Auth0 database
// connections set name to the email address, which reads poorly, so
// fall back to the email local part in that case too.
func displayName(p *auth0.Profile) string {
	name := strings.TrimSpace(p.Name)
	if name != "" && !strings.EqualFold(name, p.Email) {
		return name
	}
	if at := strings.Index(p.Email, "@"); at > 0 {
		return p.Email[:at]
	}
	return p.Sub
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
