package service

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// RegisterInput is the DTO for self-registration.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate checks the registration fields.
func (i RegisterInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username,
			validation.Required,
			validation.Length(3, 30),
			validation.Match(usernamePattern).Error("can only contain letters, numbers, hyphens, and underscores"),
		),
		validation.Field(&i.Email, validation.Required, is.Email),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&i.FirstName, validation.Length(0, 50)),
		validation.Field(&i.LastName, validation.Length(0, 50)),
	)
}

// RegisterOutput contains the results of a successful registration.
type RegisterOutput struct {
	User   *domain.User `json:"user"`
	Tokens *TokenPair   `json:"tokens"`
}

// RegistrationService defines the self-registration contract. Registration
// provisions the account's single default folder in the same transaction, so
// every user has exactly one folder with is_default set from the start.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}

type registrationService struct {
	userRepo   port.UserRepository
	folderRepo port.FolderRepository
	txManager  port.TxManager
	authSvc    AuthService
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	userRepo port.UserRepository,
	folderRepo port.FolderRepository,
	txManager port.TxManager,
	authSvc AuthService,
) RegistrationService {
	return &registrationService{
		userRepo:   userRepo,
		folderRepo: folderRepo,
		txManager:  txManager,
		authSvc:    authSvc,
	}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		defaultFolder := &domain.Folder{
			UserID:    user.ID,
			Name:      domain.DefaultFolderName,
			Color:     domain.DefaultFolderColor,
			IsDefault: true,
		}
		if err := s.folderRepo.Create(txCtx, defaultFolder); err != nil {
			return fmt.Errorf("provisioning default folder: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, tokens, err := s.authSvc.Login(ctx, LoginInput{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	return &RegisterOutput{User: user, Tokens: tokens}, nil
}
