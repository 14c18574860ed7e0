package application

import "github.com/bnema/bizassist-cli/internal/domain"

const (
	SlotHealth = iota
	SlotExpense
	SlotFraud
	SlotInventory
	SlotGreenGrid
	SlotCarbon
	SlotRecommendations
	SlotCount
)

// Slots holds one defaulted value per aggregate context slot.
type Slots [SlotCount]domain.Snapshot

// Assemble projects slots into the named context positionally.
func Assemble(slots Slots) domain.AggregateContext {
	return domain.AggregateContext{
		Health:          slots[SlotHealth],
		Expense:         slots[SlotExpense],
		Fraud:           slots[SlotFraud],
		Inventory:       slots[SlotInventory],
		GreenGrid:       slots[SlotGreenGrid],
		Carbon:          slots[SlotCarbon],
		Recommendations: slots[SlotRecommendations],
	}
}
