package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	settingsDomain "credfacil-backend/internal/domain/settings"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

// GetActive returns the singleton row. There is no create path here; the
// row is provisioned operationally.
func (r *SettingsRepository) GetActive(ctx context.Context) (*settingsDomain.Settings, error) {
	var out settingsDomain.Settings
	res := r.db.WithContext(ctx).Order("id ASC").First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, settingsDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *SettingsRepository) Update(ctx context.Context, settingsID string, f settingsDomain.UpdateFields) error {
	res := r.db.WithContext(ctx).
		Model(&settingsDomain.Settings{}).
		Where("settings_id = ?", settingsID).
		Select("approved_amount", "adhesion_fee", "pix_key", "pix_qr_code_url", "pix_copy_paste").
		Updates(settingsDomain.Settings{
			ApprovedAmount: f.ApprovedAmount,
			AdhesionFee:    f.AdhesionFee,
			PixKey:         f.PixKey,
			PixQrCodeURL:   f.PixQrCodeURL,
			PixCopyPaste:   f.PixCopyPaste,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return settingsDomain.ErrNotFound
	}
	return nil
}
