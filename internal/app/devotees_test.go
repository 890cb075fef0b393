package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"templehub/pkg/domain"
	"templehub/pkg/store"
)

type failingDevoteeStore struct {
	store.Store
}

func (f *failingDevoteeStore) SaveDevotee(domain.Devotee) error {
	return errors.New("devotee table down")
}

func TestCreateDevoteeStoresImageAndRecord(t *testing.T) {
	a := newTestApp(t)
	img := []byte("portrait")

	devotee, err := a.CreateDevotee(context.Background(), "Srila Prabhupada", "Founder", "portrait.jpg", bytes.NewReader(img), int64(len(img)))
	if err != nil {
		t.Fatalf("create devotee: %v", err)
	}
	if devotee.ImageAssetID == "" {
		t.Fatalf("expected image asset reference")
	}

	asset, rc, err := a.OpenDevoteeImage(context.Background(), devotee.ID)
	if err != nil {
		t.Fatalf("open image: %v", err)
	}
	defer rc.Close()
	if asset.OriginalName != "portrait.jpg" {
		t.Fatalf("original name = %q", asset.OriginalName)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if !bytes.Equal(data, img) {
		t.Fatalf("image payload mismatch")
	}
}

func TestCreateDevoteeRollsBackAssetOnRecordFailure(t *testing.T) {
	inner := store.NewMemoryStore()
	a, err := New(Config{
		Store:     &failingDevoteeStore{Store: inner},
		Objects:   newTestObjects(t),
		JWTSecret: "test-secret",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	_, err = a.CreateDevotee(context.Background(), "Name", "Desc", "img.jpg", strings.NewReader("x"), 1)
	if err == nil {
		t.Fatalf("expected create to fail")
	}
	assets, err := inner.ListAssets()
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("failed create must not leave asset behind: %+v", assets)
	}
}

func TestDeleteDevoteeRemovesAssetThenRecord(t *testing.T) {
	a := newTestApp(t)
	devotee, err := a.CreateDevotee(context.Background(), "Name", "Desc", "img.jpg", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("create devotee: %v", err)
	}
	if err := a.DeleteDevotee(context.Background(), devotee.ID); err != nil {
		t.Fatalf("delete devotee: %v", err)
	}
	if _, err := a.GetDevotee(devotee.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
	if _, err := a.GetAsset(devotee.ImageAssetID); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
}

func TestDeleteDevoteeToleratesMissingAsset(t *testing.T) {
	memStore := store.NewMemoryStore()
	a, err := New(Config{
		Store:     memStore,
		Objects:   newTestObjects(t),
		JWTSecret: "test-secret",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	devotee := domain.Devotee{ID: "d1", Name: "Name", ImageAssetID: "gone"}
	if err := memStore.SaveDevotee(devotee); err != nil {
		t.Fatalf("save devotee: %v", err)
	}
	if err := a.DeleteDevotee(context.Background(), "d1"); err != nil {
		t.Fatalf("delete devotee with missing asset: %v", err)
	}
	if _, err := a.GetDevotee("d1"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestDeleteDevoteeNotFound(t *testing.T) {
	a := newTestApp(t)
	if err := a.DeleteDevotee(context.Background(), "missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
