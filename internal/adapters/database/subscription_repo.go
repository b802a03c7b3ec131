package database

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// SubscriptionModel represents the database model for flood alert subscriptions.
// One row per email; unsubscribing clears Active instead of deleting.
type SubscriptionModel struct {
	ID        uint    `gorm:"primaryKey"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Active    bool    `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return "flood_alert_subscriptions"
}

// SubscriptionRepositoryAdapter implements the SubscriptionRepository port using GORM
type SubscriptionRepositoryAdapter struct {
	db *gorm.DB
}

func NewSubscriptionRepositoryAdapter(db *gorm.DB) *SubscriptionRepositoryAdapter {
	return &SubscriptionRepositoryAdapter{db: db}
}

// Migrate creates or updates the subscriptions table
func (r *SubscriptionRepositoryAdapter) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&SubscriptionModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate subscriptions", err)
	}
	return nil
}

// Save inserts a new subscription and assigns its ID
func (r *SubscriptionRepositoryAdapter) Save(ctx context.Context, sub *ports.SubscriptionData) error {
	if sub == nil {
		return errors.NewValidationError("subscription cannot be nil")
	}
	if sub.ID != 0 {
		return errors.NewValidationError("subscription already has an ID; use Update")
	}

	model := toModel(sub)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicate(err) {
			return errors.NewAlreadyExistsError("subscription for this email already exists")
		}
		return errors.NewDatabaseError("failed to save subscription", err)
	}

	sub.ID = model.ID
	sub.CreatedAt = model.CreatedAt
	sub.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SubscriptionRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.SubscriptionData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model SubscriptionModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, errors.NewDatabaseError("failed to find subscription", err)
	}

	return toData(&model), nil
}

// Update overwrites location and activity of an existing subscription
func (r *SubscriptionRepositoryAdapter) Update(ctx context.Context, sub *ports.SubscriptionData) error {
	if sub == nil {
		return errors.NewValidationError("subscription cannot be nil")
	}
	if sub.ID == 0 {
		return errors.NewValidationError("subscription ID cannot be zero for update")
	}

	result := r.db.WithContext(ctx).
		Model(&SubscriptionModel{ID: sub.ID}).
		Select("Latitude", "Longitude", "Active", "UpdatedAt").
		Updates(toModel(sub))
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update subscription", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription not found")
	}
	return nil
}

func (r *SubscriptionRepositoryAdapter) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SubscriptionModel{}).Where("active = ?", true).Count(&count).Error
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count active subscriptions", err)
	}
	return count, nil
}

func isDuplicate(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func toModel(data *ports.SubscriptionData) *SubscriptionModel {
	return &SubscriptionModel{
		ID:        data.ID,
		Email:     data.Email,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toData(model *SubscriptionModel) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:        model.ID,
		Email:     model.Email,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
