package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

// ProfileService persists credentials between runs: identity fields go to the
// profile repository, password and API key to the secret store.
type ProfileService struct {
	repo  ports.ProfileRepository
	store ports.SecretStore
}

func NewProfileService(repo ports.ProfileRepository, store ports.SecretStore) *ProfileService {
	return &ProfileService{repo: repo, store: store}
}

func (s *ProfileService) Load(ctx context.Context, name string) (domain.Profile, domain.Credentials, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Profile{}, domain.Credentials{}, fmt.Errorf("get profile %q: %w", name, err)
	}

	creds := domain.Credentials{
		AccountID: profile.AccountID,
		Username:  profile.Username,
		Email:     profile.Email,
	}
	if creds.Password, err = s.loadSecret(ctx, profile.PasswordRef); err != nil {
		return domain.Profile{}, domain.Credentials{}, fmt.Errorf("load password of profile %q: %w", name, err)
	}
	if creds.APIKey, err = s.loadSecret(ctx, profile.APIKeyRef); err != nil {
		return domain.Profile{}, domain.Credentials{}, fmt.Errorf("load api key of profile %q: %w", name, err)
	}

	return profile, creds, nil
}

func (s *ProfileService) loadSecret(ctx context.Context, ref string) (domain.Secret, error) {
	if ref == "" {
		return domain.Secret{}, nil
	}
	value, err := s.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Secret{}, nil
		}
		return domain.Secret{}, err
	}
	return domain.NewSecret(value), nil
}

func (s *ProfileService) Status(ctx context.Context, name string) (ProfileStatus, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return ProfileStatus{}, fmt.Errorf("get profile %q: %w", name, err)
	}

	return ProfileStatus{
		Profile:     profile,
		HasPassword: profile.PasswordRef != "",
		HasAPIKey:   profile.APIKeyRef != "",
	}, nil
}

// Save applies cmd to the stored profile. Secrets written by this call are
// deleted again when the profile itself cannot be saved.
func (s *ProfileService) Save(ctx context.Context, cmd SaveProfileCommand) error {
	profile, err := s.repo.GetByName(ctx, cmd.Name)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("get profile %q: %w", cmd.Name, err)
		}
		profile = domain.Profile{Name: cmd.Name}
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	update := cmd.Credentials
	if update.AccountID.Set {
		profile.AccountID = update.AccountID.Value
	}
	if update.Username.Set {
		profile.Username = update.Username.Value
	}
	if update.Email.Set {
		profile.Email = update.Email.Value
	}
	if cmd.APIBaseURL.Set {
		profile.APIBaseURL = cmd.APIBaseURL.Value
	}

	var stored, removed []string
	rollback := func(cause error) error {
		var rollbackErr error
		for _, key := range stored {
			if err := s.store.Delete(ctx, key); err != nil {
				rollbackErr = errors.Join(rollbackErr, err)
			}
		}
		if rollbackErr != nil {
			return errors.Join(cause, rollbackErr)
		}
		return cause
	}

	secrets := []struct {
		update domain.Optional[domain.Secret]
		key    string
		ref    *string
	}{
		{update: update.Password, key: domain.PasswordSecretKey(profile.Name), ref: &profile.PasswordRef},
		{update: update.APIKey, key: domain.APIKeySecretKey(profile.Name), ref: &profile.APIKeyRef},
	}
	for _, secret := range secrets {
		if !secret.update.Set {
			continue
		}
		if secret.update.Value.IsZero() {
			if *secret.ref != "" {
				removed = append(removed, *secret.ref)
			}
			*secret.ref = ""
			continue
		}
		if err := s.store.Put(ctx, secret.key, secret.update.Value.Reveal()); err != nil {
			return fmt.Errorf("store profile secret: %w", rollback(err))
		}
		stored = append(stored, secret.key)
		*secret.ref = secret.key
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile %q: %w", profile.Name, rollback(err))
	}

	for _, key := range removed {
		if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("delete previous profile secret: %w", err)
		}
	}

	return nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}
