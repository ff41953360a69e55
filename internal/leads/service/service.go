// Package service implements lead ingestion and listing.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"leadscore_backend/internal/leads/ingest"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

// Repository is the lead storage the service needs.
type Repository interface {
	InsertMany(ctx context.Context, leads []repository.NewLead) (int, error)
	List(ctx context.Context) ([]repository.Lead, error)
}

// Archiver keeps a copy of the raw upload. Optional.
type Archiver interface {
	Archive(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}

// IngestObserver records upload outcomes. Optional.
type IngestObserver interface {
	ObserveIngest(inserted, skipped int)
}

// Upload is one received lead sheet.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Service struct {
	repo     Repository
	archiver Archiver
	observer IngestObserver
	maxBytes int64
	log      *logger.Logger
}

func New(repo Repository, archiver Archiver, observer IngestObserver, maxBytes int64, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		archiver: archiver,
		observer: observer,
		maxBytes: maxBytes,
		log:      log,
	}
}

// Import parses an uploaded sheet and bulk inserts its leads, skipping
// duplicates of leads already stored.
func (s *Service) Import(ctx context.Context, upload Upload) (transport.UploadLeadsResponse, error) {
	const op = "leads.Import"

	if len(upload.Data) == 0 {
		return transport.UploadLeadsResponse{}, apperr.BadRequest("file is empty").WithOp(op)
	}
	if s.maxBytes > 0 && int64(len(upload.Data)) > s.maxBytes {
		return transport.UploadLeadsResponse{}, apperr.TooLarge(fmt.Sprintf("file exceeds %d bytes", s.maxBytes)).WithOp(op)
	}

	format, err := ingest.DetectFormat(upload.FileName)
	if err != nil {
		return transport.UploadLeadsResponse{}, apperr.BadRequest("only .csv and .xlsx files are supported").WithOp(op)
	}

	archiveKey := s.archive(ctx, upload)

	rows, err := ingest.Parse(format, bytes.NewReader(upload.Data))
	if err != nil {
		if errors.Is(err, ingest.ErrNoHeader) {
			return transport.UploadLeadsResponse{}, apperr.BadRequest("file has no recognised lead columns").WithOp(op)
		}
		return transport.UploadLeadsResponse{}, apperr.Wrap(apperr.KindBadRequest, "could not parse file", err).WithOp(op)
	}
	if len(rows) == 0 {
		return transport.UploadLeadsResponse{}, apperr.Validation("file contains no leads").WithOp(op)
	}

	leads := make([]repository.NewLead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, repository.NewLead(row))
	}

	inserted, err := s.repo.InsertMany(ctx, leads)
	if err != nil {
		s.log.DatabaseError(op, err)
		return transport.UploadLeadsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to store leads", err).WithOp(op)
	}
	skipped := len(leads) - inserted
	if s.observer != nil {
		s.observer.ObserveIngest(inserted, skipped)
	}

	s.log.WithContext(ctx).Info("leads imported",
		"file", upload.FileName,
		"format", string(format),
		"rows", len(leads),
		"inserted", inserted,
		"skipped", skipped,
	)

	return transport.UploadLeadsResponse{
		Message:   "leads uploaded",
		LeadCount: len(leads),
		Inserted:  inserted,
		Skipped:   skipped,
		ArchiveID: archiveKey,
	}, nil
}

func (s *Service) archive(ctx context.Context, upload Upload) string {
	if s.archiver == nil {
		return ""
	}
	key, err := s.archiver.Archive(ctx, upload.FileName, upload.ContentType, upload.Data)
	if err != nil {
		s.log.WithContext(ctx).Warn("lead upload archive failed", "file", upload.FileName, "error", err)
		return ""
	}
	return key
}

// List returns all leads in storage order.
func (s *Service) List(ctx context.Context) (transport.ListLeadsResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return transport.ListLeadsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err).WithOp("leads.List")
	}
	items := make([]transport.LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, transport.LeadResponse{
			ID:          l.ID,
			Name:        l.Name,
			Role:        l.Role,
			Company:     l.Company,
			Industry:    l.Industry,
			Location:    l.Location,
			LinkedInBio: l.LinkedInBio,
			CreatedAt:   l.CreatedAt,
		})
	}
	return transport.ListLeadsResponse{Items: items, Total: len(items)}, nil
}
