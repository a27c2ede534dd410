package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_SubmitReview(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	newHandler := func(t *testing.T) (*ReviewHandler, *mockUsecase.MockReviewUsecase) {
		reviewUC := mockUsecase.NewMockReviewUsecase(t)
		return NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger}), reviewUC
	}

	t.Run("stores review", func(t *testing.T) {
		h, reviewUC := newHandler(t)
		reviewUC.EXPECT().
			Submit(mock.Anything, &usecase.SubmitReviewInput{UserID: userID, ProductID: productID, Rating: 4, Comment: "fresh"}).
			Return(&entity.Review{ID: uuid.New(), Rating: 4}, nil)
		c, rec := newTestContext(http.MethodPost, "/", `{"rating":4,"comment":"fresh"}`, userID, entity.BusinessTypeHotel)

		require.NoError(t, h.SubmitReview(withParam(c, "id", productID.String())))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h, _ := newHandler(t)
		c, rec := newTestContext(http.MethodPost, "/", `{"rating":6}`, userID, entity.BusinessTypeHotel)

		require.NoError(t, h.SubmitReview(withParam(c, "id", productID.String())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		h, reviewUC := newHandler(t)
		reviewUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateReview)
		c, rec := newTestContext(http.MethodPost, "/", `{"rating":5}`, userID, entity.BusinessTypeHotel)

		require.NoError(t, h.SubmitReview(withParam(c, "id", productID.String())))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
