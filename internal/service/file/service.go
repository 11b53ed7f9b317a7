package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/presensikita/presensi-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// maxSelfieWidth caps stored selfie resolution; phone cameras produce
// far more pixels than the review screen needs.
const maxSelfieWidth = 1080

type FileService interface {
	// UploadSelfie stores a presence-capture selfie and returns its URL
	UploadSelfie(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string) (string, error)

	// UploadAvatar stores an employee profile photo and returns its URL
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

func (s *fileServiceImpl) UploadSelfie(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string) (string, error) {
	if err := validateImageExt(filename); err != nil {
		return "", err
	}

	compressed, err := compressImage(file)
	if err != nil {
		return "", fmt.Errorf("failed to process selfie: %w", err)
	}

	name := fmt.Sprintf("%s-%s.jpg", date.Format("2006-01-02"), uuid.New().String())
	path := filepath.Join("selfies", employeeID, name)

	stored, err := s.storage.Upload(ctx, compressed, path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to store selfie: %w", err)
	}

	return s.storage.GetURL(ctx, stored, 0)
}

func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if err := validateImageExt(filename); err != nil {
		return "", err
	}

	compressed, err := compressImage(file)
	if err != nil {
		return "", fmt.Errorf("failed to process avatar: %w", err)
	}

	name := fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String())
	path := filepath.Join("avatars", employeeID, name)

	stored, err := s.storage.Upload(ctx, compressed, path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	return s.storage.GetURL(ctx, stored, 0)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func validateImageExt(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return nil
	}
	return fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
}

// compressImage decodes, downscales to maxSelfieWidth when wider and
// re-encodes as JPEG.
func compressImage(file io.Reader) (io.Reader, error) {
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSelfieWidth {
		ratio := float64(maxSelfieWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy()) * ratio)
		scaled := image.NewRGBA(image.Rect(0, 0, maxSelfieWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &buf, nil
}
