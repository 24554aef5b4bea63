package catalog

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrVariantNotFound),
		errors.Is(err, domain.ErrManualPriceNotFound),
		errors.Is(err, spanner.ErrRowNotFound):
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrEmptySlug),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrInvalidSalePercentage),
		errors.Is(err, domain.ErrInvalidRelationHash),
		errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrInvalidEAN),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrSelfRelation),
		errors.Is(err, domain.ErrTooManyCombinations),
		errors.Is(err, domain.ErrInvalidFeedFilter),
		errors.Is(err, domain.ErrUnknownCurrency):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	if errors.Is(err, domain.ErrRelationAlreadyExists) {
		return status.Error(codes.AlreadyExists, err.Error())
	}

	// Failed precondition (configuration)
	if errors.Is(err, domain.ErrExchangeRateUnavailable) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
