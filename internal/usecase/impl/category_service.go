package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxSlugAttempts bounds the retries after a slug collision.
const maxSlugAttempts = 3

type categoryService struct {
	categoryRepo repository.CategoryRepository
	businessRepo repository.BusinessRepository
	now          func() time.Time
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		businessRepo: params.BusinessRepo,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upsert creates a category, or updates one owned by the seller. The slug is derived
// on creation and re-derived whenever the name changes.
func (srv *categoryService) Upsert(ctx context.Context, input *usecase.UpsertCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	if input.ID == nil {
		return srv.create(ctx, input, name)
	}

	return srv.update(ctx, input, name)
}

func (srv *categoryService) create(ctx context.Context, input *usecase.UpsertCategoryInput, name string) (*entity.Category, error) {
	if err := srv.ensureSeller(ctx, input.SellerID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:     name,
		SellerID: input.SellerID,
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	err := srv.withFreshSlug(ctx, category, func() error {
		return srv.categoryRepo.Create(ctx, category)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("category_id", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

func (srv *categoryService) update(ctx context.Context, input *usecase.UpsertCategoryInput, name string) (*entity.Category, error) {
	category, err := srv.findOwned(ctx, input.SellerID, *input.ID)
	if err != nil {
		return nil, err
	}

	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	save := func() error {
		return srv.categoryRepo.Update(ctx, category)
	}

	if name != category.Name || !category.HasSlug() {
		category.Name = name
		err = srv.withFreshSlug(ctx, category, save)
	} else {
		err = save()
	}
	if err != nil {
		return nil, errors.Wrap(mapCategoryRepoError(err), "failed to update category")
	}

	return srv.Get(ctx, category.ID)
}

// withFreshSlug derives a slug and runs write, deriving a new suffix when the store
// reports a collision.
func (srv *categoryService) withFreshSlug(ctx context.Context, category *entity.Category, write func() error) error {
	var err error
	for attempt := range maxSlugAttempts {
		category.Slug = entity.DeriveSlug(category.Name, srv.now().Add(time.Duration(attempt)*time.Millisecond))

		err = write()
		if !errors.Is(err, repository.ErrDuplicateSlug) {
			return mapCategoryRepoError(err)
		}

		srv.log(ctx).Debug("Category slug collision, retrying", slog.String("slug", category.Slug), slog.Int("attempt", attempt+1))
	}

	return errors.Wrap(domainerrors.ErrDuplicateSlug, err.Error())
}

func (srv *categoryService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindBySellerWithProductCount(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByIDWithProductCount(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(mapCategoryRepoError(err), "failed to get category")
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, sellerID, categoryID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, sellerID, categoryID); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		return errors.Wrap(mapCategoryRepoError(err), "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("category_id", categoryID))

	return nil
}

// BackfillMissingSlugs only writes rows whose slug is still missing, so a second run
// modifies nothing.
func (srv *categoryService) BackfillMissingSlugs(ctx context.Context) (int64, error) {
	categories, err := srv.categoryRepo.FindMissingSlug(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find categories without slug")
	}

	srv.log(ctx).Info("Backfilling category slugs", slog.Int("candidates", len(categories)))

	var modified int64
	for _, category := range categories {
		updated, err := srv.backfillSlug(ctx, category)
		if err != nil {
			return modified, err
		}
		if updated {
			modified++
		}
	}

	srv.log(ctx).Info("Category slug backfill finished", slog.Int64("modified", modified))

	return modified, nil
}

func (srv *categoryService) backfillSlug(ctx context.Context, category *entity.Category) (bool, error) {
	var updated bool
	err := srv.withFreshSlug(ctx, category, func() error {
		var err error
		updated, err = srv.categoryRepo.SetSlugIfMissing(ctx, category.ID, category.Slug)

		return err
	})
	if err != nil {
		return false, errors.Wrapf(err, "failed to backfill slug for category %s", category.ID)
	}

	if updated {
		srv.log(ctx).Debug("Category slug backfilled", slog.Any("category_id", category.ID), slog.String("slug", category.Slug))
	}

	return updated, nil
}

func (srv *categoryService) findOwned(ctx context.Context, sellerID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(mapCategoryRepoError(err), "failed to find category")
	}
	if category.SellerID != sellerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "category belongs to another seller")
	}

	return category, nil
}

func (srv *categoryService) ensureSeller(ctx context.Context, sellerID uuid.UUID) error {
	seller, err := srv.businessRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrSellerNotFound, err.Error())
		}

		return errors.Wrap(err, "failed to find seller")
	}
	if !seller.IsSeller() {
		return errors.Wrap(domainerrors.ErrForbidden, "only sellers own categories")
	}

	return nil
}

func mapCategoryRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateSlug):
		return errors.Wrap(domainerrors.ErrDuplicateSlug, err.Error())
	default:
		return err
	}
}
