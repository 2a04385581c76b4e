// Package evaluator implements the budget evaluation core: resolving the
// current budget period, aggregating matching expenses and classifying the
// spend-vs-limit state of each budget.
//
// The evaluator performs no I/O. It operates on immutable snapshots of
// budgets, categories and expenses and hands alert events to a Notifier.
package evaluator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/analizador-gastos/backend/internal/models"
	"github.com/analizador-gastos/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrInvalidBudget = errors.New("the budget is missing a category or has a non-positive amount")

// Level is the alert severity of a budget. Levels only ever escalate within
// a period, a new period resets them.
type Level uint8

const (
	LevelNone Level = iota
	LevelNear
	LevelOver
)

func (l Level) String() string {
	switch l {
	case LevelNear:
		return "near-limit"
	case LevelOver:
		return "over-limit"
	}

	return "none"
}

// BudgetStatus is the derived spend-vs-limit state of one budget for the
// period containing the evaluation instant. It is recomputed on demand and
// never persisted.
type BudgetStatus struct {
	BudgetID    uuid.UUID       `json:"budgetId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Period      types.Period    `json:"period"`
	PeriodStart time.Time       `json:"periodStart"`
	Spent       decimal.Decimal `json:"currentSpent"`
	Limit       decimal.Decimal `json:"limit"`
	Percentage  decimal.Decimal `json:"percentage"`
	Threshold   uint            `json:"alertThreshold"`
	IsNearLimit bool            `json:"isNearLimit"`
	IsOverLimit bool            `json:"isOverLimit"`
}

// Alert is the payload handed to the Notifier when a budget crosses a
// threshold. Message templates, currency formatting and locale are the
// notifier's concern, not ours.
type Alert struct {
	UserID      uuid.UUID       `json:"userId"`
	BudgetID    uuid.UUID       `json:"budgetId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Level       Level           `json:"-"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	Percentage  decimal.Decimal `json:"percentage"`
	Threshold   uint            `json:"threshold"`
	Period      types.Period    `json:"period"`
	PeriodStart time.Time       `json:"periodStart"`
}

// Notifier receives alert events. Implementations persist and/or dispatch
// them. A Notifier error never fails the evaluation that produced the alert.
type Notifier interface {
	Notify(alert Alert) error
}

// Sum adds up the amounts of all expenses that match the category and are
// dated at or after since.
//
// Pure function: no I/O, an empty match yields zero. decimal's zero value is
// 0, so records that never had an amount set contribute nothing.
func Sum(expenses []models.Expense, categoryID uuid.UUID, since time.Time) decimal.Decimal {
	sum := decimal.Zero

	for _, expense := range expenses {
		if expense.CategoryID != categoryID {
			continue
		}

		if expense.Date.Before(since) {
			continue
		}

		sum = sum.Add(expense.Amount)
	}

	return sum
}

type alertKey struct {
	budgetID    uuid.UUID
	periodStart time.Time
}

// Evaluator computes budget statuses and emits alerts at most once per
// threshold level per budget per period.
type Evaluator struct {
	weekStart time.Weekday
	notifier  Notifier

	// mu serializes evaluations so that two concurrent passes over the same
	// budget cannot both observe "not yet alerted" and double-emit.
	mu      sync.Mutex
	alerted map[alertKey]Level
}

// New returns an Evaluator that starts weekly periods on weekStart and hands
// alerts to notifier. A nil notifier drops alerts.
func New(weekStart time.Weekday, notifier Notifier) *Evaluator {
	return &Evaluator{
		weekStart: weekStart,
		notifier:  notifier,
		alerted:   make(map[alertKey]Level),
	}
}

// Evaluate computes the status of a single budget from an expense snapshot.
//
// It emits an alert through the notifier when the budget crosses its alert
// threshold or its limit for the first time in the current period. Repeated
// evaluations of an already-crossed budget stay silent until the period
// rolls over.
func (e *Evaluator) Evaluate(budget models.Budget, expenses []models.Expense, now time.Time) (BudgetStatus, error) {
	if budget.CategoryID == uuid.Nil || !budget.Amount.IsPositive() {
		return BudgetStatus{}, fmt.Errorf("%w: budget %s", ErrInvalidBudget, budget.ID)
	}

	since, err := budget.Period.Start(now, e.weekStart)
	if err != nil {
		return BudgetStatus{}, err
	}

	spent := Sum(expenses, budget.CategoryID, since)
	percentage := spent.Div(budget.Amount).Mul(decimal.NewFromInt(100))
	threshold := decimal.NewFromInt(int64(budget.AlertThreshold))

	status := BudgetStatus{
		BudgetID:    budget.ID,
		CategoryID:  budget.CategoryID,
		Period:      budget.Period,
		PeriodStart: since,
		Spent:       spent,
		Limit:       budget.Amount,
		Percentage:  percentage,
		Threshold:   budget.AlertThreshold,
		IsNearLimit: percentage.GreaterThanOrEqual(threshold),
		IsOverLimit: percentage.GreaterThanOrEqual(decimal.NewFromInt(100)),
	}

	level := LevelNone
	if status.IsOverLimit {
		level = LevelOver
	} else if status.IsNearLimit {
		level = LevelNear
	}

	e.mu.Lock()
	emit := e.record(budget.ID, since, level)
	e.mu.Unlock()

	if emit {
		alert := Alert{
			UserID:      budget.UserID,
			BudgetID:    budget.ID,
			CategoryID:  budget.CategoryID,
			Level:       level,
			Spent:       spent,
			Limit:       budget.Amount,
			Percentage:  percentage,
			Threshold:   budget.AlertThreshold,
			Period:      budget.Period,
			PeriodStart: since,
		}

		if e.notifier != nil {
			if err := e.notifier.Notify(alert); err != nil {
				// Best effort delivery. The computation itself succeeded.
				log.Warn().Err(err).Str("budget", budget.ID.String()).Msg("alert notification failed")
			}
		}
	}

	return status, nil
}

// record updates the last-alerted level for the budget's current period and
// reports whether the level escalated. Stale entries of the budget from
// earlier periods are dropped so the map stays bounded by the number of
// budgets.
//
// Callers must hold e.mu.
func (e *Evaluator) record(budgetID uuid.UUID, periodStart time.Time, level Level) bool {
	key := alertKey{budgetID: budgetID, periodStart: periodStart.UTC()}

	for k := range e.alerted {
		if k.budgetID == budgetID && k != key {
			delete(e.alerted, k)
		}
	}

	last := e.alerted[key]
	if level <= last {
		return false
	}

	e.alerted[key] = level
	return level > LevelNone
}

// EvaluateAll evaluates each budget independently.
//
// Budgets referencing a category that no longer exists, or that is not an
// expense category, are skipped silently. A malformed budget is logged and
// excluded without affecting its siblings.
func (e *Evaluator) EvaluateAll(budgets []models.Budget, categories []models.Category, expenses []models.Expense, now time.Time) []BudgetStatus {
	expenseCategories := make(map[uuid.UUID]struct{}, len(categories))
	for _, category := range categories {
		if category.Type == models.CategoryTypeExpense {
			expenseCategories[category.ID] = struct{}{}
		}
	}

	statuses := make([]BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		// A budget without a category is malformed, not orphaned. It falls
		// through to Evaluate so it is logged as a warning.
		if budget.CategoryID != uuid.Nil {
			if _, ok := expenseCategories[budget.CategoryID]; !ok {
				log.Debug().Str("budget", budget.ID.String()).Msg("skipping orphaned budget")
				continue
			}
		}

		status, err := e.Evaluate(budget, expenses, now)
		if err != nil {
			log.Warn().Err(err).Str("budget", budget.ID.String()).Msg("skipping budget")
			continue
		}

		statuses = append(statuses, status)
	}

	return statuses
}
