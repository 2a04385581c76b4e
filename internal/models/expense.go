package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single recorded expense.
//
// The date carries calendar-day semantics, it is truncated to midnight on
// save. ID, UserID and CreatedAt never change after creation.
type Expense struct {
	DefaultModel
	UserID     uuid.UUID
	User       User `json:"-"`
	CategoryID uuid.UUID
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time
	Note       string
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Expense)

	if tx.Statement.Changed("CategoryID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists.
func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	if toSave.CategoryID == uuid.Nil {
		return ErrExpenseCategoryMissing
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)

	if !e.Date.IsZero() {
		year, month, day := e.Date.Date()
		e.Date = time.Date(year, month, day, 0, 0, 0, 0, e.Date.Location())
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	return nil
}

// ExpensesForUser returns a snapshot of all expenses of a user.
func ExpensesForUser(db *gorm.DB, userID uuid.UUID) ([]Expense, error) {
	var expenses []Expense

	err := db.Where(&Expense{UserID: userID}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
