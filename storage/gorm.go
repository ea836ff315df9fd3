package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// CartSnapshotRow is the durable form of one user's cart set.
type CartSnapshotRow struct {
	UserID    string         `gorm:"primaryKey;column:user_id"`
	Carts     datatypes.JSON `gorm:"column:carts"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (CartSnapshotRow) TableName() string { return "cart_snapshots" }

// Gorm persists cart snapshots in Postgres. Selected with
// STORAGE_BACKEND=postgres for deployments that want snapshots to survive a
// redis flush.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&CartSnapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate cart_snapshots: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) SaveCart(ctx context.Context, userID string, carts []models.Cart) error {
	b, err := json.Marshal(Sanitize(carts))
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}
	row := CartSnapshotRow{UserID: userID, Carts: datatypes.JSON(b)}
	err = g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"carts", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

func (g *Gorm) LoadCart(ctx context.Context, userID string) ([]models.Cart, error) {
	var row CartSnapshotRow
	err := g.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var carts []models.Cart
	if err := json.Unmarshal(row.Carts, &carts); err != nil {
		log.Printf("⚠️ undecodable cart snapshot for %s, discarding: %v", userID, err)
		return []models.Cart{}, nil
	}
	return Sanitize(carts), nil
}
