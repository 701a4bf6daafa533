package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

type resourceService struct {
	adapter   adapter.ClubAdapter
	validator validators.Validator
}

func NewResourceService(clubAdapter adapter.ClubAdapter, validator validators.Validator) ResourceService {
	return &resourceService{adapter: clubAdapter, validator: validator}
}

// List implements ResourceService.
func (s *resourceService) List(ctx context.Context, level models.ResourceLevel) ([]models.Resource, error) {
	resources, err := s.adapter.Resources(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// Get implements ResourceService.
func (s *resourceService) Get(ctx context.Context, id uuid.UUID) (models.Resource, error) {
	resource, err := s.adapter.Resource(ctx, id)
	if err != nil {
		return models.Resource{}, fmt.Errorf("get resource: %w", err)
	}
	return resource, nil
}

// Upload implements ResourceService. The extension and size checks run
// before the file is opened for streaming, mirroring the server-side
// limits so oversized or non-PDF files never leave the machine.
func (s *resourceService) Upload(ctx context.Context, title string, level models.ResourceLevel, filePath string) (models.Resource, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return models.Resource{}, fmt.Errorf("stat upload file: %w", err)
	}
	if info.Size() > validators.MaxResourceFileSize {
		return models.Resource{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	f, err := os.Open(filePath)
	if err != nil {
		return models.Resource{}, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	up := models.ResourceUpload{
		Title:    title,
		Level:    level,
		Filename: filepath.Base(filePath),
		File:     f,
	}
	if err := s.validator.Validate(ctx, up); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resource, err := s.adapter.UploadResource(ctx, up)
	if err != nil {
		return models.Resource{}, fmt.Errorf("upload resource: %w", err)
	}
	return resource, nil
}

// Update implements ResourceService.
func (s *resourceService) Update(ctx context.Context, id uuid.UUID, upd models.ResourceUpdate) (models.Resource, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resource, err := s.adapter.UpdateResource(ctx, id, upd)
	if err != nil {
		return models.Resource{}, fmt.Errorf("update resource: %w", err)
	}
	return resource, nil
}

// Delete implements ResourceService.
func (s *resourceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.adapter.DeleteResource(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

// Download implements ResourceService. The filename comes from the server's
// Content-Disposition header; path separators are stripped so a hostile
// header cannot escape destDir.
func (s *resourceService) Download(ctx context.Context, id uuid.UUID, destDir string) (string, error) {
	dl, err := s.adapter.DownloadResource(ctx, id)
	if err != nil {
		return "", fmt.Errorf("download resource: %w", err)
	}

	name := filepath.Base(filepath.Clean(dl.Filename))
	if name == "." || name == string(filepath.Separator) {
		name = fmt.Sprintf("resource-%s.pdf", id)
	}

	path := filepath.Join(destDir, name)
	if err := os.WriteFile(path, dl.Content, 0o644); err != nil {
		return "", fmt.Errorf("write downloaded file: %w", err)
	}

	return path, nil
}
