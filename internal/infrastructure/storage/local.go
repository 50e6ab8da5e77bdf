// Package storage implementa el almacenamiento de fotos de artículos.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/usecase"
	"github.com/invorya/stockroom-api/pkg/config"
)

var _ usecase.PhotoStore = (*LocalPhotoStore)(nil)

// LocalPhotoStore guarda fotos en disco local y las expone como URIs opacas
// bajo BaseURL. El nombre en disco es un UUID con la extensión original para
// que nombres repetidos del cliente no colisionen.
type LocalPhotoStore struct {
	dir     string
	baseURL string
}

// NewLocalPhotoStore crea el directorio de subida si no existe.
func NewLocalPhotoStore(cfg config.StorageConfig) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subida: %w", err)
	}
	return &LocalPhotoStore{dir: cfg.UploadDir, baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}, nil
}

// Save escribe el contenido a disco y devuelve la URI con la que se
// referencia la foto desde el artículo.
func (s *LocalPhotoStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	stored := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("crear archivo de foto: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("escribir foto: %w", err)
	}
	return path.Join(s.baseURL, stored), nil
}
