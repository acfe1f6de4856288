package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

const minPasswordLength = 6

// AccountService implements account lifecycle and credential checks.
type AccountService struct {
	repo       ports.AccountRepository
	tokens     ports.TokenIssuer
	activity   ports.ActivityRecorder // optional; nil disables recording
	bcryptCost int
	log        zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenIssuer, activity ports.ActivityRecorder, bcryptCost int, log zerolog.Logger) *AccountService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{
		repo:       repo,
		tokens:     tokens,
		activity:   activity,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register validates the input, hashes the password and inserts the account.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		PostalCode:   in.PostalCode,
		IsActive:     true,
		FirstLogin:   in.FirstLogin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("role", string(created.Role)).Msg("account registered")
	s.record(created.ID, created.ID, domain.ActionRegistered)
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email, bad password
// and deactivated account are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !account.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login succeeded")
	s.record(account.ID, account.ID, domain.ActionLoggedIn)
	return account, token, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail returns (nil, nil) when no account matches; internal callers
// use absence as a signal, not an error.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	return account, err
}

// Update applies a partial update. A present password is re-hashed before
// storage; a manager completing their one-time setup has first_login cleared
// in the same write.
func (s *AccountService) Update(ctx context.Context, id string, actorID string, patch domain.AccountPatch) (*domain.Account, error) {
	if patch.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, domain.NewValidationError(map[string]string{"role": "must be one of admin, manager, caregiver, parent"})
	}
	if patch.Email != nil {
		if _, err := mail.ParseAddress(*patch.Email); err != nil {
			return nil, domain.NewValidationError(map[string]string{"email": "must be a valid email address"})
		}
	}

	passwordChanged := false
	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLength {
			return nil, domain.NewValidationError(map[string]string{
				"password": fmt.Sprintf("must be at least %d characters", minPasswordLength),
			})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		patch.PasswordHash = &h
		patch.Password = nil
		passwordChanged = true
	}

	if passwordChanged && patch.FirstLogin == nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Role == domain.RoleManager && current.FirstLogin {
			cleared := false
			patch.FirstLogin = &cleared
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", id).Bool("password_changed", passwordChanged).Msg("account updated")
	if passwordChanged {
		s.record(id, actorID, domain.ActionPasswordChanged)
	} else {
		s.record(id, actorID, domain.ActionProfileUpdated)
	}
	return updated, nil
}

// Deactivate soft-deletes the account.
func (s *AccountService) Deactivate(ctx context.Context, id string, actorID string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("account_id", id).Str("actor_id", actorID).Msg("account deactivated")
	s.record(id, actorID, domain.ActionDeactivated)
	return nil
}

// List returns a page of active accounts plus the filtered total.
func (s *AccountService) List(ctx context.Context, filter ports.ListAccountsFilter) ([]*domain.Account, int64, error) {
	filter = filter.Normalized()
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, 0, domain.NewValidationError(map[string]string{"role": "must be one of admin, manager, caregiver, parent"})
	}
	return s.repo.List(ctx, filter)
}

// HardDelete permanently removes a manager account. Reserved for managers:
// every other role keeps its row for history and is soft-deleted instead.
func (s *AccountService) HardDelete(ctx context.Context, id string, actorID string) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("account_id", id).Str("actor_id", actorID).Msg("manager account deleted")
	s.record(id, actorID, domain.ActionDeleted)
	return nil
}

func (s *AccountService) record(accountID, actorID string, action domain.ActivityAction) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEvent{
		AccountID:  accountID,
		ActorID:    actorID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

func validateRegisterInput(in ports.RegisterInput) error {
	fields := make(map[string]string)
	if in.Email == "" {
		fields["email"] = "is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if in.Password == "" {
		fields["password"] = "is required"
	} else if len(in.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", minPasswordLength)
	}
	if in.Role == "" {
		fields["role"] = "is required"
	} else if !in.Role.Valid() {
		fields["role"] = "must be one of admin, manager, caregiver, parent"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
