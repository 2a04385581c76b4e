package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategorySum is the total spent in one category within a date range.
type CategorySum struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Name       string          `json:"name"`
	Sum        decimal.Decimal `json:"sum"`
}

// MonthSum is the total spent in one calendar month.
type MonthSum struct {
	Month string          `json:"month"` // YYYY-MM
	Sum   decimal.Decimal `json:"sum"`
}

// ExpenseSum returns the sum of all expense amounts of a user in [from, to].
func ExpenseSum(db *gorm.DB, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("expenses").
		Select("SUM(amount)").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Where("date >= ? AND date <= ?", from, to).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses failed: %w", err)
	}

	return sum.Decimal, nil
}

// CategorySums returns per-category expense totals of a user in [from, to].
func CategorySums(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]CategorySum, error) {
	var sums []CategorySum

	err := db.Table("expenses").
		Select("expenses.category_id AS category_id, categories.name AS name, SUM(expenses.amount) AS sum").
		Joins("JOIN categories ON categories.id = expenses.category_id AND categories.deleted_at IS NULL").
		Where("expenses.user_id = ? AND expenses.deleted_at IS NULL", userID).
		Where("expenses.date >= ? AND expenses.date <= ?", from, to).
		Group("expenses.category_id, categories.name").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("summing expenses per category failed: %w", err)
	}

	return sums, nil
}

// MonthSums returns per-month expense totals of a user in [from, to].
func MonthSums(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]MonthSum, error) {
	var sums []MonthSum

	err := db.Table("expenses").
		Select("strftime('%Y-%m', date) AS month, SUM(amount) AS sum").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Where("date >= ? AND date <= ?", from, to).
		Group("strftime('%Y-%m', date)").
		Order("month").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("summing expenses per month failed: %w", err)
	}

	return sums, nil
}
