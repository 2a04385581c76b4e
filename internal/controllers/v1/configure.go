package v1

import (
	"time"

	"github.com/analizador-gastos/backend/internal/config"
	"github.com/analizador-gastos/backend/internal/evaluator"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/analizador-gastos/backend/internal/ws"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	cfg  config.Config
	eval *evaluator.Evaluator
	hub  *ws.Hub
)

// Configure wires the controllers to the runtime configuration, the alert
// notifier and the websocket hub. It must be called before routes are
// served.
func Configure(c config.Config, notifier evaluator.Notifier, h *ws.Hub) {
	cfg = c
	eval = evaluator.New(c.WeekStartDay(), notifier)
	hub = h
}

// evaluateBudgets runs a full evaluation pass for the user and pushes the
// fresh statuses to connected clients.
//
// It is called after every expense or budget mutation. The mutation itself
// has already succeeded, so evaluation errors are logged, not surfaced.
func evaluateBudgets(userID uuid.UUID) {
	statuses, err := budgetStatuses(userID, time.Now())
	if err != nil {
		log.Error().Err(err).Str("user", userID.String()).Msg("budget evaluation failed")
		return
	}

	if hub != nil {
		hub.BroadcastBudgetStatus(userID, statuses)
	}
}

// budgetStatuses fetches immutable snapshots for the user and evaluates all
// budgets against them.
func budgetStatuses(userID uuid.UUID, now time.Time) ([]evaluator.BudgetStatus, error) {
	budgets, err := models.BudgetsForUser(models.DB, userID)
	if err != nil {
		return nil, err
	}

	categories, err := models.CategoriesForUser(models.DB, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := models.ExpensesForUser(models.DB, userID)
	if err != nil {
		return nil, err
	}

	return eval.EvaluateAll(budgets, categories, expenses, now), nil
}
