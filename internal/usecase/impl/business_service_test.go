package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	txManager    *mockRepo.MockTransactionManager
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	storage      *mockSvc.MockDocumentStorage
	publisher    *mockSvc.MockEventPublisher
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	fixtures := businessServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		storage:      mockSvc.NewMockDocumentStorage(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewBusinessService(BusinessServiceParams{
		TxManager:    fixtures.txManager,
		BusinessRepo: fixtures.businessRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Storage:      fixtures.storage,
		Publisher:    fixtures.publisher,
		Config: &config.Config{Accounting: &config.AccountingConfig{
			DefaultPayoutFrequency: "monthly",
			DefaultMinimumPayout:   50,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func sellerRegistration() *usecase.RegisterBusinessInput {
	return &usecase.RegisterBusinessInput{
		BusinessType:       entity.BusinessTypeSeller,
		Name:               " Fresh Farms ",
		OwnerName:          "Asha",
		Email:              " Sales@FreshFarms.example ",
		Phone:              "+91 98765 43210",
		Password:           "s3cret-pass",
		RegistrationNumber: "REG-001",
		Seller:             &entity.SellerDetails{StorageType: "cold", DeliveryRadiusKm: 15},
		Hotel:              &entity.HotelDetails{HotelType: "ignored"},
	}
}

func TestBusinessService_Register_SellerCreatesSummary(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	input := sellerRegistration()
	expiresAt := time.Now().Add(time.Hour)

	var created *entity.Business
	var summary *entity.PaymentSummary

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockSummaryRepo := mockRepo.NewMockPaymentSummaryRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().PaymentSummaryRepo().Return(mockSummaryRepo)
			mockBusinessRepo.EXPECT().ExistsByEmail(ctx, "sales@freshfarms.example").Return(false, nil)
			mockBusinessRepo.EXPECT().ExistsByRegistrationNumber(ctx, "REG-001").Return(false, nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).
				Run(func(_ context.Context, business *entity.Business) {
					business.ID = uuid.New()
					created = business
				}).
				Return(nil)
			mockSummaryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PaymentSummary")).
				Run(func(_ context.Context, s *entity.PaymentSummary) { summary = s }).
				Return(nil)

			return fn(mockFactory)
		})
	fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.BusinessTypeSeller).Return("token", expiresAt, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, "business.registered", event.Type)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)

	require.NotNil(t, created)
	assert.Equal(t, "Fresh Farms", created.Name)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.Equal(t, entity.VerificationPending, created.VerificationStatus)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Hotel)

	require.NotNil(t, summary)
	assert.Equal(t, created.ID, summary.SellerID)
	assert.Equal(t, entity.PayoutMonthly, summary.PayoutSchedule.Frequency)
	assert.True(t, decimal.NewFromInt(50).Equal(summary.PayoutSchedule.MinimumAmount))
}

func TestBusinessService_Register_HotelProfile(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	input := &usecase.RegisterBusinessInput{
		BusinessType:       entity.BusinessTypeHotel,
		Name:               "Hotel Saffron",
		OwnerName:          "Ravi",
		Email:              "frontdesk@saffron.example",
		Phone:              "+91 90000 00001",
		Password:           "s3cret-pass",
		RegistrationNumber: "HTL-042",
		Hotel:              &entity.HotelDetails{HotelType: "fine-dining", Cuisine: []string{"north-indian"}, SeatingCapacity: 80},
		Seller:             &entity.SellerDetails{ProductCategories: []string{"dairy"}},
	}

	var created *entity.Business
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().ExistsByEmail(ctx, "frontdesk@saffron.example").Return(false, nil)
			mockBusinessRepo.EXPECT().ExistsByRegistrationNumber(ctx, "HTL-042").Return(false, nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).
				Run(func(_ context.Context, business *entity.Business) {
					business.ID = uuid.New()
					created = business
				}).
				Return(nil)

			return fn(mockFactory)
		})
	fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.BusinessTypeHotel).Return("token", time.Now(), nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	fx.businessRepo.EXPECT().FindByID(ctx, created.ID).Return(created, nil)
	profile, err := fx.service.GetProfile(ctx, created.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "hotel", doc["businessType"])
	hotel, ok := doc["hotelDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fine-dining", hotel["hotelType"])
	assert.NotContains(t, doc, "sellerDetails")
	assert.NotContains(t, string(raw), "productCategories")
	assert.NotContains(t, string(raw), "hashed")
}

func TestBusinessService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().ExistsByEmail(ctx, "sales@freshfarms.example").Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, sellerRegistration())

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestBusinessService_Register_DuplicateRegistrationNumberFromIndex(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().ExistsByEmail(ctx, mock.Anything).Return(false, nil)
			mockBusinessRepo.EXPECT().ExistsByRegistrationNumber(ctx, "REG-001").Return(false, nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateRegistrationNumber)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, sellerRegistration())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRegistrationNumber))
}

func TestBusinessService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.RegisterBusinessInput)
	}{
		{
			name:   "unknown business type",
			mutate: func(input *usecase.RegisterBusinessInput) { input.BusinessType = "restaurant" },
		},
		{
			name:   "missing seller details",
			mutate: func(input *usecase.RegisterBusinessInput) { input.Seller = nil },
		},
		{
			name:   "blank email",
			mutate: func(input *usecase.RegisterBusinessInput) { input.Email = "  " },
		},
		{
			name:   "blank password",
			mutate: func(input *usecase.RegisterBusinessInput) { input.Password = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBusinessService(t)
			input := sellerRegistration()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestBusinessService_Login(t *testing.T) {
	businessID := uuid.New()
	active := &entity.Business{ID: businessID, Type: entity.BusinessTypeHotel, PasswordHash: "hashed", IsActive: true}

	t.Run("success", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, "chef@hotel.example").Return(active, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(businessID, entity.BusinessTypeHotel).Return("token", time.Now(), nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "chef@hotel.example", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "token", output.Token)
		assert.Equal(t, active, output.Business)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(active, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "chef@hotel.example", Password: "bad"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("deactivated", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		inactive := &entity.Business{ID: businessID, PasswordHash: "hashed"}

		fx.businessRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(inactive, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "chef@hotel.example", Password: "pw"})

		assert.True(t, errors.Is(err, domainerrors.ErrBusinessInactive))
	})
}

func TestBusinessService_UpdateVerificationStatus_RequiresStoredLicense(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.Business{ID: businessID, LicenseDocument: "licenses/abc.pdf"}

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
	fx.storage.EXPECT().Exists(ctx, "licenses/abc.pdf").Return(false, nil)

	err := fx.service.UpdateVerificationStatus(ctx, businessID, entity.VerificationVerified)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_UpdateVerificationStatus_Verified(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.Business{ID: businessID, LicenseDocument: "licenses/abc.pdf"}

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
	fx.storage.EXPECT().Exists(ctx, "licenses/abc.pdf").Return(true, nil)
	fx.businessRepo.EXPECT().UpdateVerificationStatus(ctx, businessID, entity.VerificationVerified).Return(nil)

	require.NoError(t, fx.service.UpdateVerificationStatus(ctx, businessID, entity.VerificationVerified))
}

func TestBusinessService_UpdateVerificationStatus_RejectSkipsStorage(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().UpdateVerificationStatus(ctx, businessID, entity.VerificationRejected).
		Return(repository.ErrBusinessNotFound)

	err := fx.service.UpdateVerificationStatus(ctx, businessID, entity.VerificationRejected)

	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_FindSellersNear(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	near := &entity.Business{
		Type:    entity.BusinessTypeSeller,
		Address: entity.BusinessAddress{Latitude: 12.9716, Longitude: 77.5946},
		Seller:  &entity.SellerDetails{DeliveryRadiusKm: 10},
	}
	far := &entity.Business{
		Type:    entity.BusinessTypeSeller,
		Address: entity.BusinessAddress{Latitude: 13.0827, Longitude: 80.2707},
		Seller:  &entity.SellerDetails{DeliveryRadiusKm: 10},
	}

	fx.businessRepo.EXPECT().FindActiveVerifiedSellers(ctx).Return([]*entity.Business{near, far}, nil)

	sellers, err := fx.service.FindSellersNear(ctx, 12.98, 77.60)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Business{near}, sellers)
}

func TestBusinessService_FindSellersNear_OutOfRange(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.FindSellersNear(context.Background(), 91, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_UploadLicense(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	content := strings.NewReader("%PDF-1.4")
	stored := &service.StoredDocument{Reference: "licenses/x.pdf", ContentType: "application/pdf", Size: 8}

	fx.storage.EXPECT().Store(ctx, "license.pdf", "application/pdf", content).Return(stored, nil)

	document, err := fx.service.UploadLicense(ctx, &usecase.UploadLicenseInput{
		Filename:    "license.pdf",
		ContentType: "application/pdf",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, document)
}

func TestBusinessService_UploadLicense_MissingContent(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.UploadLicense(context.Background(), &usecase.UploadLicenseInput{Filename: "license.pdf"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
