package alerts

import (
	"fmt"

	"pocketledger/internal/models"
)

// BudgetTitle returns the notification title for a spend severity.
func BudgetTitle(severity models.Severity, budgetName string) string {
	switch severity {
	case models.SeverityExceeded:
		return fmt.Sprintf("%s budget exceeded", budgetName)
	case models.SeverityAlert:
		return fmt.Sprintf("%s budget almost used", budgetName)
	case models.SeverityInfo:
		return fmt.Sprintf("%s budget check-in", budgetName)
	}
	return budgetName
}

// BudgetMessage describes how much of the budget has been used.
func BudgetMessage(severity models.Severity, b *models.Budget) string {
	pct := b.Percentage()
	switch severity {
	case models.SeverityExceeded:
		over := b.Spent.Sub(b.Amount)
		return fmt.Sprintf("You have spent %s of %s (%.0f%%), %s over budget.", b.Spent.StringFixed(2), b.Amount.StringFixed(2), pct, over.StringFixed(2))
	default:
		left := b.Amount.Sub(b.Spent)
		return fmt.Sprintf("You have used %.0f%% of your %s budget. %s left.", pct, b.Period, left.StringFixed(2))
	}
}

// GoalMessage describes a reached savings milestone.
func GoalMessage(milestone int, g *models.Goal) string {
	if milestone >= 100 {
		return fmt.Sprintf("You reached your %q goal of %s.", g.Name, g.TargetAmount.StringFixed(2))
	}
	return fmt.Sprintf("You are %d%% of the way to %q (%s of %s).", milestone, g.Name, g.SavedAmount.StringFixed(2), g.TargetAmount.StringFixed(2))
}
