package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fixdesk/internal/shared/logger"
)

// ImageStore persists ticket photos. Files are named after the ticket
// number so the frontend can derive URLs without a lookup.
type ImageStore interface {
	// Save writes the image and returns its public URL path.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Remove deletes one image. Missing files are not an error.
	Remove(ctx context.Context, name string) error

	// RemoveAll deletes a set of images concurrently, best effort. Failures
	// are logged and swallowed.
	RemoveAll(ctx context.Context, names ...string)

	// URL returns the public URL path for a stored image name.
	URL(name string) string
}

// MainImageName is the canonical file name for the primary ticket photo.
func MainImageName(ticketNumber int64) string {
	return fmt.Sprintf("%d.webp", ticketNumber)
}

// TicketImageName is the file name for the paper-ticket photo.
func TicketImageName(ticketNumber int64) string {
	return fmt.Sprintf("%d_ticket.webp", ticketNumber)
}

// ExtraImageName is the file name for the optional extra photo.
func ExtraImageName(ticketNumber int64) string {
	return fmt.Sprintf("%d_extra.webp", ticketNumber)
}

// LocalImageStore stores images on the local filesystem under a single
// directory served as static content.
type LocalImageStore struct {
	dir        string
	publicBase string
	maxBytes   int64
}

func NewLocalImageStore(dir, publicBase string, maxBytes int64) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalImageStore{
		dir:        dir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
		maxBytes:   maxBytes,
	}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	if s.maxBytes > 0 {
		r = io.LimitReader(r, s.maxBytes+1)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", s.maxBytes)
	}

	// Rename over the destination so a re-upload replaces the old photo
	// atomically.
	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.URL(name), nil
}

func (s *LocalImageStore) Remove(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

func (s *LocalImageStore) RemoveAll(ctx context.Context, names ...string) {
	var wg sync.WaitGroup
	for _, name := range names {
		if name == "" {
			continue
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := s.Remove(ctx, name); err != nil {
				logger.Warn("failed to remove image", "name", name, "error", err)
			}
		}(name)
	}
	wg.Wait()
}

func (s *LocalImageStore) URL(name string) string {
	return s.publicBase + "/" + name
}

func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid image name: %q", name)
	}
	return nil
}
