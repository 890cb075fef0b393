package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"templehub/pkg/domain"
	"templehub/pkg/storage"
)

// CreateAsset stores a binary payload and its metadata record. The size
// check runs before an ID is allocated so oversized uploads leave no trace.
func (a *App) CreateAsset(ctx context.Context, originalName string, r io.Reader, size int64) (domain.BinaryAsset, error) {
	if strings.TrimSpace(originalName) == "" {
		return domain.BinaryAsset{}, errors.New("filename required")
	}
	if size > a.maxAssetBytes {
		return domain.BinaryAsset{}, ErrAssetTooLarge
	}

	id := uuid.NewString()
	asset := domain.BinaryAsset{
		ID:           id,
		Filename:     buildAssetFilename(id, originalName),
		ContentType:  contentTypeFor(originalName),
		OriginalName: filepath.Base(originalName),
		ByteLength:   size,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.objects.Put(ctx, asset.Filename, r, size, asset.ContentType); err != nil {
		return domain.BinaryAsset{}, fmt.Errorf("save payload: %w", err)
	}
	if err := a.store.SaveAsset(asset); err != nil {
		if delErr := a.objects.Delete(ctx, asset.Filename); delErr != nil {
			return domain.BinaryAsset{}, errors.Join(fmt.Errorf("save asset: %w", err), fmt.Errorf("roll back payload: %w", delErr))
		}
		return domain.BinaryAsset{}, fmt.Errorf("save asset: %w", err)
	}
	return asset, nil
}

// GetAsset retrieves asset metadata by ID.
func (a *App) GetAsset(id string) (domain.BinaryAsset, error) {
	asset, ok, err := a.store.GetAsset(id)
	if err != nil {
		return domain.BinaryAsset{}, fmt.Errorf("fetch asset: %w", err)
	}
	if !ok {
		return domain.BinaryAsset{}, ErrAssetNotFound
	}
	return asset, nil
}

// GetAssetByFilename retrieves asset metadata by storage filename.
func (a *App) GetAssetByFilename(name string) (domain.BinaryAsset, error) {
	asset, ok, err := a.store.GetAssetByFilename(name)
	if err != nil {
		return domain.BinaryAsset{}, fmt.Errorf("fetch asset: %w", err)
	}
	if !ok {
		return domain.BinaryAsset{}, ErrAssetNotFound
	}
	return asset, nil
}

// OpenAssetStream opens the stored payload for reading. The caller closes it.
func (a *App) OpenAssetStream(ctx context.Context, id string) (domain.BinaryAsset, io.ReadCloser, error) {
	asset, err := a.GetAsset(id)
	if err != nil {
		return domain.BinaryAsset{}, nil, err
	}
	return a.openPayload(ctx, asset)
}

// OpenAssetStreamByFilename is OpenAssetStream keyed by storage filename.
func (a *App) OpenAssetStreamByFilename(ctx context.Context, name string) (domain.BinaryAsset, io.ReadCloser, error) {
	asset, err := a.GetAssetByFilename(name)
	if err != nil {
		return domain.BinaryAsset{}, nil, err
	}
	return a.openPayload(ctx, asset)
}

func (a *App) openPayload(ctx context.Context, asset domain.BinaryAsset) (domain.BinaryAsset, io.ReadCloser, error) {
	rc, err := a.objects.Open(ctx, asset.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return domain.BinaryAsset{}, nil, ErrAssetNotFound
		}
		return domain.BinaryAsset{}, nil, fmt.Errorf("open payload: %w", err)
	}
	return asset, rc, nil
}

// ListAssets returns all asset metadata records.
func (a *App) ListAssets() ([]domain.BinaryAsset, error) {
	return a.store.ListAssets()
}

// DeleteAsset removes the payload first, then the metadata record.
// A failed payload delete leaves the record in place so the asset stays
// discoverable for retry.
func (a *App) DeleteAsset(ctx context.Context, id string) error {
	asset, ok, err := a.store.GetAsset(id)
	if err != nil {
		return fmt.Errorf("fetch asset: %w", err)
	}
	if !ok {
		return ErrAssetNotFound
	}
	if err := a.objects.Delete(ctx, asset.Filename); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("%w: %v", ErrAssetDeletionFailed, err)
	}
	if _, err := a.store.DeleteAsset(id); err != nil {
		return fmt.Errorf("delete asset record: %w", err)
	}
	return nil
}

func buildAssetFilename(id, originalName string) string {
	name := sanitizeFilename(filepath.Base(originalName))
	if name == "" {
		name = "asset"
	}
	return id + "-" + name
}

func contentTypeFor(name string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	lastUnderscore := false
	for _, r := range name {
		if r <= 0x7f {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
				b.WriteRune(r)
				lastUnderscore = false
				continue
			}
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
