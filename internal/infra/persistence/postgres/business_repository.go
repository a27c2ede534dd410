// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessRepository implements the domain.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business and maps unique violations to duplicate errors.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case idxBusinessesRegistrationNumber:
				return repository.ErrDuplicateRegistrationNumber
			case idxBusinessesEmail:
				return repository.ErrDuplicateEmail
			default:
				// The driver did not name the index; email is the first unique key checked.
				return repository.ErrDuplicateEmail
			}
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Update the entity with generated values
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByEmail retrieves a business by its normalised email.
func (repo *businessRepository) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "email = ?", entity.NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	return toBusinessDomain(&businessM), nil
}

// ExistsByEmail reports whether a business with the email exists.
func (repo *businessRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", entity.NormalizeEmail(email))
}

// ExistsByRegistrationNumber reports whether a business with the registration number exists.
func (repo *businessRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	return repo.exists(ctx, "registration_number = ?", registrationNumber)
}

func (repo *businessRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BusinessModel{}).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check business existence")
	}

	return count > 0, nil
}

// UpdateVerificationStatus sets the admin verification status.
func (repo *businessRepository) UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	return repo.updateColumns(ctx, id, map[string]any{"verification_status": string(status)})
}

// SetActive flips the soft-deactivation flag.
func (repo *businessRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_active": active})
}

// AddRatingScore locks the business row so concurrent reviews cannot lose an update.
func (repo *businessRepository) AddRatingScore(ctx context.Context, id uuid.UUID, score int) (entity.Rating, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id", "rating_average", "rating_count").
		First(&businessM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Rating{}, repository.ErrBusinessNotFound
		}

		return entity.Rating{}, errors.Wrap(err, "failed to lock business rating")
	}

	rating := entity.Rating{Average: businessM.RatingAverage, Count: businessM.RatingCount}.Add(score)
	if err := repo.updateColumns(ctx, id, map[string]any{
		"rating_average": rating.Average,
		"rating_count":   rating.Count,
	}); err != nil {
		return entity.Rating{}, err
	}

	return rating, nil
}

func (repo *businessRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.BusinessModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// FindActiveVerifiedSellers lists sellers that are active, verified and geocoded.
func (repo *businessRepository) FindActiveVerifiedSellers(ctx context.Context) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("business_type = ? AND is_active AND verification_status = ?", string(entity.BusinessTypeSeller), string(entity.VerificationVerified)).
		Where("NOT (address_latitude = 0 AND address_longitude = 0)").
		Order("created_at ASC").
		Find(&businessModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active sellers")
	}

	return toBusinessDomains(businessModels), nil
}

// FindHotelsByCreation lists all hotels ordered by creation time, oldest first.
func (repo *businessRepository) FindHotelsByCreation(ctx context.Context) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("business_type = ?", string(entity.BusinessTypeHotel)).
		Order("created_at ASC").Order("id ASC").
		Find(&businessModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find hotels")
	}

	return toBusinessDomains(businessModels), nil
}

// --- Mapper Functions ---

func toBusinessDomains(models []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(models))
	for _, businessM := range models {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	business := &entity.Business{
		ID:           data.ID,
		Type:         entity.BusinessType(data.BusinessType),
		Name:         data.Name,
		OwnerName:    data.OwnerName,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Address: entity.BusinessAddress{
			Street:     data.Address.Street,
			City:       data.Address.City,
			State:      data.Address.State,
			PostalCode: data.Address.PostalCode,
			Country:    data.Address.Country,
			Latitude:   data.Address.Latitude,
			Longitude:  data.Address.Longitude,
		},
		LicenseDocument:    data.LicenseDocument,
		RegistrationNumber: data.RegistrationNumber,
		VerificationStatus: entity.VerificationStatus(data.VerificationStatus),
		Rating:             entity.Rating{Average: data.RatingAverage, Count: data.RatingCount},
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.HotelDetails != nil {
		business.Hotel = &entity.HotelDetails{
			HotelType:       data.HotelDetails.HotelType,
			Cuisine:         data.HotelDetails.Cuisine,
			SeatingCapacity: data.HotelDetails.SeatingCapacity,
		}
	}
	if data.SellerDetails != nil {
		business.Seller = &entity.SellerDetails{
			ProductCategories: data.SellerDetails.ProductCategories,
			StorageType:       data.SellerDetails.StorageType,
			DeliveryRadiusKm:  data.SellerDetails.DeliveryRadiusKm,
		}
	}

	return business
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
// Only the detail group selected by the business type is persisted.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	businessM := &model.BusinessModel{
		ID:           data.ID,
		BusinessType: string(data.Type),
		Name:         data.Name,
		OwnerName:    data.OwnerName,
		Email:        entity.NormalizeEmail(data.Email),
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Address: model.BusinessAddressCols{
			Street:     data.Address.Street,
			City:       data.Address.City,
			State:      data.Address.State,
			PostalCode: data.Address.PostalCode,
			Country:    data.Address.Country,
			Latitude:   data.Address.Latitude,
			Longitude:  data.Address.Longitude,
		},
		LicenseDocument:    data.LicenseDocument,
		RegistrationNumber: data.RegistrationNumber,
		VerificationStatus: string(data.VerificationStatus),
		RatingAverage:      data.Rating.Average,
		RatingCount:        data.Rating.Count,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	switch data.Type {
	case entity.BusinessTypeHotel:
		if data.Hotel != nil {
			businessM.HotelDetails = &model.HotelDetailsDoc{
				HotelType:       data.Hotel.HotelType,
				Cuisine:         data.Hotel.Cuisine,
				SeatingCapacity: data.Hotel.SeatingCapacity,
			}
		}
	case entity.BusinessTypeSeller:
		if data.Seller != nil {
			businessM.SellerDetails = &model.SellerDetailsDoc{
				ProductCategories: data.Seller.ProductCategories,
				StorageType:       data.Seller.StorageType,
				DeliveryRadiusKm:  data.Seller.DeliveryRadiusKm,
			}
		}
	}

	return businessM
}
