package adapters

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"leadscore_backend/internal/adapters/storage"
	leadsrepo "leadscore_backend/internal/leads/repository"
	offersrepo "leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/scoring/ports"

	"github.com/google/uuid"
)

type offerStoreStub struct {
	offer offersrepo.Offer
	err   error
}

func (s offerStoreStub) GetByID(context.Context, uuid.UUID) (offersrepo.Offer, error) {
	return s.offer, s.err
}

func (s offerStoreStub) List(context.Context) ([]offersrepo.Offer, error) {
	return []offersrepo.Offer{s.offer}, s.err
}

func TestScoringOfferReaderMapsNotFound(t *testing.T) {
	reader := NewScoringOfferReader(offerStoreStub{err: offersrepo.ErrNotFound})
	_, err := reader.GetOffer(context.Background(), uuid.New())
	if !errors.Is(err, ports.ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestScoringOfferReaderMapsFields(t *testing.T) {
	id := uuid.New()
	reader := NewScoringOfferReader(offerStoreStub{offer: offersrepo.Offer{
		ID: id, Name: "x", ValueProps: []string{"a"}, IdealUseCases: []string{"b"},
	}})
	got, err := reader.GetOffer(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id || got.IdealUseCases[0] != "b" || got.ValueProps[0] != "a" {
		t.Fatalf("unexpected offer %+v", got)
	}
}

type leadStoreStub []leadsrepo.Lead

func (s leadStoreStub) List(context.Context) ([]leadsrepo.Lead, error) { return s, nil }

func TestScoringLeadReaderKeepsOrder(t *testing.T) {
	reader := NewScoringLeadReader(leadStoreStub{
		{ID: uuid.New(), Name: "first", LinkedInBio: "bio"},
		{ID: uuid.New(), Name: "second"},
	})
	leads, err := reader.ListLeads(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 2 || leads[0].Name != "first" || leads[0].LinkedInBio != "bio" || leads[1].Name != "second" {
		t.Fatalf("unexpected leads %+v", leads)
	}
}

type storageStub struct {
	bucket string
	obj    storage.Object
	body   []byte
}

func (s *storageStub) Put(_ context.Context, bucket string, obj storage.Object) (string, error) {
	s.bucket, s.obj = bucket, obj
	s.body, _ = io.ReadAll(obj.Body)
	return obj.Folder + "/" + obj.FileName, nil
}

func (s *storageStub) EnsureBucket(context.Context, string) error { return nil }
func (s *storageStub) Check(storage.Object) error                 { return nil }

func TestLeadUploadArchiver(t *testing.T) {
	store := &storageStub{}
	a := NewLeadUploadArchiver(store, "lead-uploads")
	a.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }

	key, err := a.Archive(context.Background(), "leads.csv", "", []byte("name\nAva\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "2026/10/17/leads.csv" || store.bucket != "lead-uploads" {
		t.Fatalf("unexpected key %q bucket %q", key, store.bucket)
	}
	if store.obj.ContentType != "application/octet-stream" || store.obj.Size != 9 || string(store.body) != "name\nAva\n" {
		t.Fatalf("unexpected upload %+v", store.obj)
	}
	if store.obj.Metadata["original-name"] != "leads.csv" || store.obj.Metadata["uploaded-at"] != "2026-10-17T09:00:00Z" {
		t.Fatalf("unexpected metadata %v", store.obj.Metadata)
	}
}
