package usecases

import (
	"context"
	"io"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// UploadPhotoUseCase stores the photo of a ticket, replacing any earlier
// one. The ticket itself is not looked up.
type UploadPhotoUseCase struct {
	photos PhotoStore
	logger logger.Interface
}

func NewUploadPhotoUseCase(photos PhotoStore, logger logger.Interface) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		photos: photos,
		logger: logger,
	}
}

func (uc *UploadPhotoUseCase) Execute(ctx context.Context, id int64, r io.Reader) (string, error) {
	if id <= 0 {
		return "", errors.NewBadRequestError(constants.ErrMsgInvalidID)
	}
	return uc.photos.Store(ctx, id, r)
}

type GetPhotoUseCase struct {
	photos PhotoStore
	logger logger.Interface
}

func NewGetPhotoUseCase(photos PhotoStore, logger logger.Interface) *GetPhotoUseCase {
	return &GetPhotoUseCase{
		photos: photos,
		logger: logger,
	}
}

func (uc *GetPhotoUseCase) Execute(_ context.Context, id int64) (io.ReadCloser, error) {
	if id <= 0 {
		return nil, errors.NewBadRequestError(constants.ErrMsgInvalidID)
	}
	return uc.photos.Open(id)
}

type DeletePhotoUseCase struct {
	photos PhotoStore
	logger logger.Interface
}

func NewDeletePhotoUseCase(photos PhotoStore, logger logger.Interface) *DeletePhotoUseCase {
	return &DeletePhotoUseCase{
		photos: photos,
		logger: logger,
	}
}

func (uc *DeletePhotoUseCase) Execute(_ context.Context, id int64) error {
	if id <= 0 {
		return errors.NewBadRequestError(constants.ErrMsgInvalidID)
	}
	return uc.photos.Delete(id)
}
