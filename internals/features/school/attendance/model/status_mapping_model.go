// file: internals/features/school/attendance/model/status_mapping_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   StatusMappingModel — tabel pemetaan status kehadiran
   Daftar string per kategori disimpan sebagai JSON supaya
   status baru bisa ditambah tanpa deploy ulang.
   ======================================================= */

type StatusMappingModel struct {
	StatusMappingID       uuid.UUID      `json:"status_mapping_id" gorm:"type:uuid;primaryKey;column:status_mapping_id;default:gen_random_uuid()"`
	StatusMappingCategory string         `json:"status_mapping_category" gorm:"type:varchar(20);not null;uniqueIndex;column:status_mapping_category"` // hadir | izin | alpha
	StatusMappingAliases  datatypes.JSON `json:"status_mapping_aliases" gorm:"type:jsonb;not null;column:status_mapping_aliases"`                     // ["hadir","present",...]
	CreatedAt             time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt             time.Time      `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (StatusMappingModel) TableName() string {
	return "status_mappings"
}
