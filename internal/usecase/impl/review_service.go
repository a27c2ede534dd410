package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores a review and folds its score into the seller's rating in the same transaction.
func (srv *reviewService) Submit(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed,
			"rating must be between %d and %d", entity.MinReviewRating, entity.MaxReviewRating)
	}

	review := &entity.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	var rating entity.Rating
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		product, err := factory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			return err
		}

		reviewRepo := factory.ReviewRepo()
		exists, err := reviewRepo.ExistsByUserAndProduct(ctx, input.UserID, input.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if exists {
			return repository.ErrDuplicateReview
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}

		rating, err = factory.BusinessRepo().AddRatingScore(ctx, product.SellerID, review.Rating)

		return err
	})
	if err != nil {
		return nil, mapReviewRepoError(err)
	}

	srv.log(ctx).Info("Review submitted",
		slog.Any("review_id", review.ID),
		slog.Any("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
		slog.Float64("seller_rating", rating.Average),
	)

	return review, nil
}

func (srv *reviewService) ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func mapReviewRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateReview):
		return errors.Wrap(domainerrors.ErrDuplicateReview, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, err.Error())
	case errors.Is(err, repository.ErrBusinessNotFound):
		return errors.Wrap(domainerrors.ErrSellerNotFound, err.Error())
	default:
		return err
	}
}
