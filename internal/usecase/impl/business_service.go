// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager     repository.TransactionManager
	businessRepo  repository.BusinessRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	storage       service.DocumentStorage
	publisher     service.EventPublisher
	payoutDefault payoutDefaults
	now           func() time.Time
	logger        *slog.Logger
}

// payoutDefaults is the schedule given to a freshly onboarded seller.
type payoutDefaults struct {
	frequency entity.PayoutFrequency
	minimum   decimal.Decimal
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.DocumentStorage
	Publisher    service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:     params.TxManager,
		businessRepo:  params.BusinessRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		storage:       params.Storage,
		publisher:     params.Publisher,
		payoutDefault: newPayoutDefaults(params.Config),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func newPayoutDefaults(cfg *config.Config) payoutDefaults {
	defaults := payoutDefaults{frequency: entity.PayoutWeekly, minimum: decimal.Zero}
	if cfg == nil || cfg.Accounting == nil {
		return defaults
	}

	if frequency := entity.PayoutFrequency(cfg.Accounting.DefaultPayoutFrequency); frequency.IsValid() {
		defaults.frequency = frequency
	}
	if cfg.Accounting.DefaultMinimumPayout > 0 {
		defaults.minimum = decimal.NewFromFloat(cfg.Accounting.DefaultMinimumPayout).Round(2)
	}

	return defaults
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a hotel or seller account. The email and registration number are
// checked inside the transaction; the unique indexes catch concurrent registrations.
func (srv *businessService) Register(ctx context.Context, input *usecase.RegisterBusinessInput) (*usecase.AuthOutput, error) {
	business := buildBusinessEntity(input)
	if err := business.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password is required")
	}

	srv.log(ctx).Info("Starting business registration",
		slog.String("business_type", business.Type.String()),
		slog.String("email", business.Email),
	)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	business.PasswordHash = hashedPassword

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.createBusiness(ctx, repoFactory, business)
	})
	if err != nil {
		srv.log(ctx).Warn("Business registration failed", slog.String("email", business.Email), slog.Any("error", err))

		return nil, errors.Wrap(mapBusinessRepoError(err), "failed to execute business registration transaction")
	}

	output, err := srv.issueToken(business)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventBusinessRegistered, &service.BusinessRegistered{
		BusinessID: business.ID,
		Type:       business.Type,
		Name:       business.Name,
		Email:      business.Email,
	}, srv.now())

	srv.log(ctx).Info("Business registered", slog.Any("business_id", business.ID))

	return output, nil
}

func (srv *businessService) createBusiness(ctx context.Context, repoFactory repository.RepositoryFactory, business *entity.Business) error {
	businessRepo := repoFactory.BusinessRepo()

	exists, err := businessRepo.ExistsByEmail(ctx, business.Email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if exists {
		return repository.ErrDuplicateEmail
	}

	exists, err = businessRepo.ExistsByRegistrationNumber(ctx, business.RegistrationNumber)
	if err != nil {
		return errors.Wrap(err, "failed to check registration number")
	}
	if exists {
		return repository.ErrDuplicateRegistrationNumber
	}

	if err := businessRepo.Create(ctx, business); err != nil {
		return errors.Wrap(err, "failed to create business")
	}

	if !business.IsSeller() {
		return nil
	}

	summary := entity.NewPaymentSummary(business.ID, srv.payoutDefault.frequency, srv.payoutDefault.minimum, srv.now())
	if err := repoFactory.PaymentSummaryRepo().Create(ctx, summary); err != nil {
		return errors.Wrap(err, "failed to create seller payment summary")
	}

	return nil
}

// Login verifies the password outside any transaction since bcrypt is CPU-bound.
func (srv *businessService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	business, err := srv.businessRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	if !srv.hasher.Check(input.Password, business.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("business_id", business.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !business.IsActive {
		return nil, errors.Wrap(domainerrors.ErrBusinessInactive, "login failed")
	}

	return srv.issueToken(business)
}

func (srv *businessService) issueToken(business *entity.Business) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(business.ID, business.Type)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Business:  business,
	}, nil
}

func (srv *businessService) GetProfile(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(mapBusinessRepoError(err), "failed to get business profile")
	}

	return business, nil
}

// UpdateVerificationStatus refuses to verify a business whose license document is not in storage.
func (srv *businessService) UpdateVerificationStatus(ctx context.Context, businessID uuid.UUID, status entity.VerificationStatus) error {
	if !status.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown verification status %q", status)
	}

	if status == entity.VerificationVerified {
		business, err := srv.businessRepo.FindByID(ctx, businessID)
		if err != nil {
			return errors.Wrap(mapBusinessRepoError(err), "failed to load business for verification")
		}

		stored, err := srv.storage.Exists(ctx, business.LicenseDocument)
		if err != nil {
			return errors.Wrap(domainerrors.ErrDocumentStoreFailed, err.Error())
		}
		if !stored {
			return errors.Wrap(domainerrors.ErrValidationFailed, "license document must be uploaded before verification")
		}
	}

	if err := srv.businessRepo.UpdateVerificationStatus(ctx, businessID, status); err != nil {
		return errors.Wrap(mapBusinessRepoError(err), "failed to update verification status")
	}

	srv.log(ctx).Info("Business verification status updated",
		slog.Any("business_id", businessID),
		slog.String("status", string(status)),
	)

	return nil
}

func (srv *businessService) Deactivate(ctx context.Context, businessID uuid.UUID) error {
	if err := srv.businessRepo.SetActive(ctx, businessID, false); err != nil {
		return errors.Wrap(mapBusinessRepoError(err), "failed to deactivate business")
	}

	srv.log(ctx).Info("Business deactivated", slog.Any("business_id", businessID))

	return nil
}

func (srv *businessService) FindSellersNear(ctx context.Context, latitude, longitude float64) ([]*entity.Business, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "coordinates out of range")
	}

	sellers, err := srv.businessRepo.FindActiveVerifiedSellers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sellers")
	}

	point := orb.Point{longitude, latitude}

	return lo.Filter(sellers, func(seller *entity.Business, _ int) bool {
		return seller.DeliversTo(point)
	}), nil
}

func (srv *businessService) UploadLicense(ctx context.Context, input *usecase.UploadLicenseInput) (*service.StoredDocument, error) {
	if input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "license file is required")
	}

	document, err := srv.storage.Store(ctx, input.Filename, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Warn("Failed to store license document", slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store license document")
	}

	return document, nil
}

func buildBusinessEntity(input *usecase.RegisterBusinessInput) *entity.Business {
	business := &entity.Business{
		Type:               input.BusinessType,
		Name:               strings.TrimSpace(input.Name),
		OwnerName:          strings.TrimSpace(input.OwnerName),
		Email:              entity.NormalizeEmail(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		Address:            input.Address,
		LicenseDocument:    input.LicenseDocument,
		RegistrationNumber: strings.TrimSpace(input.RegistrationNumber),
		VerificationStatus: entity.VerificationPending,
		IsActive:           true,
	}

	// Only the group selected by the discriminator is kept.
	switch input.BusinessType {
	case entity.BusinessTypeHotel:
		business.Hotel = input.Hotel
	case entity.BusinessTypeSeller:
		business.Seller = input.Seller
	}

	return business
}

// mapBusinessRepoError translates repository sentinels into domain errors.
func mapBusinessRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrDuplicateEmail, err.Error())
	case errors.Is(err, repository.ErrDuplicateRegistrationNumber):
		return errors.Wrap(domainerrors.ErrDuplicateRegistrationNumber, err.Error())
	case errors.Is(err, repository.ErrBusinessNotFound):
		return errors.Wrap(domainerrors.ErrBusinessNotFound, err.Error())
	default:
		return err
	}
}
