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

func newTestCategoryHandler(t *testing.T) (*CategoryHandler, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)

	return NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: discardLogger}), categoryUC
}

func TestCategoryHandler_Upsert(t *testing.T) {
	sellerID := uuid.New()

	t.Run("create passes nil id", func(t *testing.T) {
		h, categoryUC := newTestCategoryHandler(t)
		categoryUC.EXPECT().
			Upsert(mock.Anything, mock.MatchedBy(func(input *usecase.UpsertCategoryInput) bool {
				return input.ID == nil && input.SellerID == sellerID && input.Name == "Fresh Produce" &&
					input.Color == nil && input.Order != nil && *input.Order == 2
			})).
			Return(&entity.Category{ID: uuid.New(), Slug: "fresh-produce"}, nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/categories", `{"name":"Fresh Produce","order":2}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.CreateCategory(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "fresh-produce")
	})

	t.Run("update passes path id", func(t *testing.T) {
		h, categoryUC := newTestCategoryHandler(t)
		categoryID := uuid.New()
		categoryUC.EXPECT().
			Upsert(mock.Anything, mock.MatchedBy(func(input *usecase.UpsertCategoryInput) bool {
				return input.ID != nil && *input.ID == categoryID
			})).
			Return(nil, domainerrors.ErrCategoryNotFound)
		c, rec := newTestContext(http.MethodPut, "/", `{"name":"Dairy"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.UpdateCategory(withParam(c, "id", categoryID.String())))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("name required", func(t *testing.T) {
		h, _ := newTestCategoryHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/categories", `{"color":"#fff"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.CreateCategory(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	sellerID := uuid.New()
	categoryID := uuid.New()
	h, categoryUC := newTestCategoryHandler(t)
	categoryUC.EXPECT().Delete(mock.Anything, sellerID, categoryID).Return(nil)
	c, rec := newTestContext(http.MethodDelete, "/", "", sellerID, entity.BusinessTypeSeller)

	require.NoError(t, h.DeleteCategory(withParam(c, "id", categoryID.String())))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
