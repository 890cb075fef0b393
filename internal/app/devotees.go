package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"templehub/pkg/domain"
)

// CreateDevotee stores the image asset first and the profile record
// second. If the record cannot be saved the asset is removed again so no
// orphaned payload survives a failed create.
func (a *App) CreateDevotee(ctx context.Context, name, description, imageName string, image io.Reader, imageSize int64) (domain.Devotee, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Devotee{}, ErrMissingFields
	}

	asset, err := a.CreateAsset(ctx, imageName, image, imageSize)
	if err != nil {
		return domain.Devotee{}, err
	}

	devotee := domain.Devotee{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		ImageAssetID: asset.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveDevotee(devotee); err != nil {
		if delErr := a.DeleteAsset(ctx, asset.ID); delErr != nil {
			return domain.Devotee{}, errors.Join(fmt.Errorf("save devotee: %w", err), fmt.Errorf("roll back image: %w", delErr))
		}
		return domain.Devotee{}, fmt.Errorf("save devotee: %w", err)
	}
	return devotee, nil
}

// GetDevotee retrieves a devotee profile by ID.
func (a *App) GetDevotee(id string) (domain.Devotee, error) {
	devotee, ok, err := a.store.GetDevotee(id)
	if err != nil {
		return domain.Devotee{}, fmt.Errorf("fetch devotee: %w", err)
	}
	if !ok {
		return domain.Devotee{}, ErrRecordNotFound
	}
	return devotee, nil
}

// ListDevotees returns all devotee profiles.
func (a *App) ListDevotees() ([]domain.Devotee, error) {
	return a.store.ListDevotees()
}

// OpenDevoteeImage streams the image asset referenced by a devotee.
func (a *App) OpenDevoteeImage(ctx context.Context, id string) (domain.BinaryAsset, io.ReadCloser, error) {
	devotee, err := a.GetDevotee(id)
	if err != nil {
		return domain.BinaryAsset{}, nil, err
	}
	return a.OpenAssetStream(ctx, devotee.ImageAssetID)
}

// DeleteDevotee removes the referenced image asset first, then the
// profile record. A missing asset is tolerated; any other asset failure
// aborts the delete and leaves the record intact.
func (a *App) DeleteDevotee(ctx context.Context, id string) error {
	devotee, ok, err := a.store.GetDevotee(id)
	if err != nil {
		return fmt.Errorf("fetch devotee: %w", err)
	}
	if !ok {
		return ErrRecordNotFound
	}

	if err := a.DeleteAsset(ctx, devotee.ImageAssetID); err != nil && !errors.Is(err, ErrAssetNotFound) {
		return err
	}
	if _, err := a.store.DeleteDevotee(id); err != nil {
		return fmt.Errorf("delete devotee: %w", err)
	}
	return nil
}
