package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUserEmailNotUnique    = errors.New("a user with this email already exists")
	ErrCategoryNameNotUnique = errors.New("you already have a category with this name")
	ErrCategoryTypeInvalid   = errors.New("the category type must be expense or income")

	ErrExpenseCategoryMissing = errors.New("an expense must reference a category")
	ErrExpenseAmountNegative  = errors.New("the expense amount must not be negative")

	ErrBudgetNotUnique           = errors.New("you already have a budget for this category and period")
	ErrBudgetCategoryNotExpense  = errors.New("budgets can only be set on expense categories")
	ErrBudgetAmountNotPositive   = errors.New("the budget amount must be positive")
	ErrBudgetThresholdOutOfRange = errors.New("the alert threshold must be between 1 and 100")

	ErrNotificationTypeInvalid = errors.New("the notification type must be info or warning")
)
