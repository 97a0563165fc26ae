package usecase

import (
	"context"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// MsgAssetIncomplete error de validación previo a cualquier E/S.
const MsgAssetIncomplete = "Data gambar tidak lengkap untuk diunggah."

// UploaderUseCase sube imágenes al host configurado y devuelve la URL que luego viaja
// como Image de un producto.
type UploaderUseCase struct {
	uploader ports.ImageUploader
}

// NewUploaderUseCase construye el caso de uso sobre el adaptador elegido (ryzencdn, Cloudinary).
func NewUploaderUseCase(uploader ports.ImageUploader) *UploaderUseCase {
	return &UploaderUseCase{uploader: uploader}
}

// UploadImage valida los metadatos del asset y lo sube.
func (uc *UploaderUseCase) UploadImage(ctx context.Context, asset entity.Asset) (string, error) {
	const action = "mengunggah gambar"
	if !asset.Complete() {
		return "", domain.Normalize(domain.Validation(MsgAssetIncomplete), action)
	}
	u, err := uc.uploader.Upload(ctx, asset)
	if err != nil {
		return "", domain.Normalize(err, action)
	}
	return u, nil
}
