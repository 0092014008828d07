package home

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
)

var contentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageUploadUseCase emite URLs prefirmadas para que el realtor suba imágenes directamente al bucket.
type ImageUploadUseCase struct {
	presigner ImagePresigner
}

// NewImageUploadUseCase presigner puede ser nil si el almacenamiento no está configurado.
func NewImageUploadUseCase(presigner ImagePresigner) *ImageUploadUseCase {
	return &ImageUploadUseCase{presigner: presigner}
}

// RequestUpload genera la URL de subida bajo homes/<realtorID>/.
func (uc *ImageUploadUseCase) RequestUpload(ctx context.Context, realtorID string, in dto.ImageUploadRequest) (*dto.ImageUploadResponse, error) {
	if uc.presigner == nil {
		return nil, domain.ErrUnavailable
	}
	ext, ok := contentTypeExt[strings.ToLower(in.ContentType)]
	if !ok {
		return nil, fmt.Errorf("%w: contentType %q no soportado", domain.ErrInvalidInput, in.ContentType)
	}
	if ext == ".jpg" && strings.EqualFold(path.Ext(in.FileName), ".jpeg") {
		ext = ".jpeg"
	}
	key := path.Join("homes", realtorID, uuid.New().String()+ext)

	url, expiresAt, err := uc.presigner.PresignUpload(ctx, key, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("prefirmar subida: %w", err)
	}
	return &dto.ImageUploadResponse{
		UploadURL: url,
		ObjectKey: key,
		PublicURL: uc.presigner.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}
