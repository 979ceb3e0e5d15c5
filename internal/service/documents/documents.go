package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/internal/repo"
	entdocument "github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
)

var ErrDocumentNotFound = errors.New("document not found")

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*repo.Document, error)

	// DownloadURL returns a time-limited URL for the document file. Without
	// an asset store it falls back to the local media path.
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type documentService struct {
	db    *repo.Client
	store *assets.Client
}

// New creates the document service. store may be nil when no object store
// is configured.
func New(db *repo.Client, store *assets.Client) Service {
	return &documentService{db: db, store: store}
}

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*repo.Document, error) {
	d, err := s.db.Document.Query().
		Where(entdocument.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (s *documentService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.store == nil {
		return "/media/" + d.File, nil
	}
	url, err := s.store.PresignDownload(ctx, d.File)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}
