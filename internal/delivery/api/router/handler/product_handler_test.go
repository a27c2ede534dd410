package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger}), productUC
}

func TestProductHandler_CreateProduct(t *testing.T) {
	sellerID := uuid.New()
	categoryID := uuid.New()

	t.Run("created for the authenticated seller", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
				return input.SellerID == sellerID && input.CategoryID != nil && *input.CategoryID == categoryID &&
					input.Name == "Paneer" && input.Price.Equal(decimal.RequireFromString("320.50")) && input.Unit == "kg"
			})).
			Return(&entity.Product{ID: uuid.New(), SellerID: sellerID, Name: "Paneer"}, nil)
		body := `{"categoryId":"` + categoryID.String() + `","name":"Paneer","price":"320.50","unit":"kg"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/products", body, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.CreateProduct(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Paneer")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/products", `{"name":"Paneer","price":"-1","unit":"kg"}`, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.CreateProduct(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign category", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category belongs to another seller"))
		body := `{"categoryId":"` + categoryID.String() + `","name":"Paneer","price":"10","unit":"kg"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/products", body, sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.CreateProduct(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous request", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/products", `{"name":"Paneer","price":"10","unit":"kg"}`, uuid.Nil, "")

		require.NoError(t, h.CreateProduct(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	sellerID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), SellerID: sellerID, Name: "Ghee"}}

	t.Run("own catalogue", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().ListForSeller(mock.Anything, sellerID).Return(products, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/products", "", sellerID, entity.BusinessTypeSeller)

		require.NoError(t, h.ListOwnProducts(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ghee")
	})

	t.Run("seller in path", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().ListForSeller(mock.Anything, sellerID).Return(products, nil)
		c, rec := newTestContext(http.MethodGet, "/", "", uuid.New(), entity.BusinessTypeHotel)

		require.NoError(t, h.ListSellerProducts(withParam(c, "id", sellerID.String())))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed seller id", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, rec := newTestContext(http.MethodGet, "/", "", uuid.New(), entity.BusinessTypeHotel)

		require.NoError(t, h.ListSellerProducts(withParam(c, "id", "not-a-uuid")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
