package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentMethodService struct {
	txManager         repository.TransactionManager
	paymentMethodRepo repository.PaymentMethodRepository
	businessRepo      repository.BusinessRepository
	qrCode            service.QRCodeService
	logger            *slog.Logger
}

// PaymentMethodServiceParams holds dependencies for PaymentMethodService, injected by Fx.
type PaymentMethodServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	PaymentMethodRepo repository.PaymentMethodRepository
	BusinessRepo      repository.BusinessRepository
	QRCode            service.QRCodeService
	Logger            *slog.Logger
}

// NewPaymentMethodService is the constructor for paymentMethodService.
func NewPaymentMethodService(params PaymentMethodServiceParams) usecase.PaymentMethodUsecase {
	return &paymentMethodService{
		txManager:         params.TxManager,
		paymentMethodRepo: params.PaymentMethodRepo,
		businessRepo:      params.BusinessRepo,
		qrCode:            params.QRCode,
		logger:            params.Logger,
	}
}

func (srv *paymentMethodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a payout method. When IsDefault is set the method is promoted in the
// same transaction, demoting any previous default.
func (srv *paymentMethodService) Create(ctx context.Context, input *usecase.CreatePaymentMethodInput) (*entity.PaymentMethod, error) {
	method := &entity.PaymentMethod{
		SellerID: input.SellerID,
		Type:     input.Type,
		Status:   entity.VerificationPending,
	}
	switch input.Type {
	case entity.PaymentMethodBank:
		method.Bank = input.Bank
	case entity.PaymentMethodUPI:
		method.UPI = input.UPI
	case entity.PaymentMethodWallet:
		method.Wallet = input.Wallet
	}

	if err := method.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		seller, err := factory.BusinessRepo().FindByID(ctx, input.SellerID)
		if err != nil {
			return err
		}
		if !seller.IsSeller() {
			return errors.Wrap(domainerrors.ErrForbidden, "only sellers can register payout methods")
		}

		methodRepo := factory.PaymentMethodRepo()
		if err := methodRepo.Create(ctx, method); err != nil {
			return errors.Wrap(err, "failed to create payment method")
		}

		if !input.IsDefault {
			return nil
		}
		if err := methodRepo.SetDefault(ctx, input.SellerID, method.ID); err != nil {
			return errors.Wrap(err, "failed to promote payment method")
		}
		method.IsDefault = true

		return nil
	})
	if err != nil {
		return nil, mapPaymentMethodRepoError(err)
	}

	srv.log(ctx).Info("Payment method created",
		slog.Any("seller_id", method.SellerID),
		slog.Any("method_id", method.ID),
		slog.String("type", string(method.Type)),
		slog.Bool("is_default", method.IsDefault),
	)

	return method, nil
}

func (srv *paymentMethodService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	methods, err := srv.paymentMethodRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

// SetDefault promotes methodID inside a transaction so the seller never ends up with two defaults.
func (srv *paymentMethodService) SetDefault(ctx context.Context, sellerID, methodID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.PaymentMethodRepo().SetDefault(ctx, sellerID, methodID)
	})
	if err != nil {
		return mapPaymentMethodRepoError(err)
	}

	srv.log(ctx).Info("Default payment method changed",
		slog.Any("seller_id", sellerID),
		slog.Any("method_id", methodID),
	)

	return nil
}

func (srv *paymentMethodService) UpdateStatus(ctx context.Context, methodID uuid.UUID, status entity.VerificationStatus) error {
	if !status.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown verification status %q", status)
	}

	if err := srv.paymentMethodRepo.UpdateStatus(ctx, methodID, status); err != nil {
		return mapPaymentMethodRepoError(err)
	}

	return nil
}

// PaymentQR renders the upi://pay link of an owned UPI method, payable to the seller's business name.
func (srv *paymentMethodService) PaymentQR(ctx context.Context, sellerID, methodID uuid.UUID) ([]byte, error) {
	method, err := srv.paymentMethodRepo.FindByID(ctx, methodID)
	if err != nil {
		return nil, mapPaymentMethodRepoError(err)
	}
	if method.SellerID != sellerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "payment method belongs to another seller")
	}

	seller, err := srv.businessRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, mapBusinessRepoError(err)
	}

	link, err := method.UPIPayLink(seller.Name)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	png, err := srv.qrCode.Encode(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment QR code")
	}

	return png, nil
}

func mapPaymentMethodRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPaymentMethodNotFound):
		return errors.Wrap(domainerrors.ErrPaymentMethodNotFound, err.Error())
	case errors.Is(err, repository.ErrBusinessNotFound):
		return errors.Wrap(domainerrors.ErrSellerNotFound, err.Error())
	default:
		return err
	}
}
