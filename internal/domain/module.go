package domain

import (
	"fmt"
	"strings"
)

type ModuleID string

const (
	ModuleExpense   ModuleID = "expense"
	ModuleFraud     ModuleID = "fraud"
	ModuleInventory ModuleID = "inventory"
	ModuleGreenGrid ModuleID = "green-grid"
)

// Modules lists every business module in probe order.
var Modules = [...]ModuleID{ModuleExpense, ModuleFraud, ModuleInventory, ModuleGreenGrid}

func ParseModuleID(raw string) (ModuleID, error) {
	id := ModuleID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownModule, raw)
	}

	return id, nil
}

func (m ModuleID) Valid() bool {
	switch m {
	case ModuleExpense, ModuleFraud, ModuleInventory, ModuleGreenGrid:
		return true
	default:
		return false
	}
}

func (m ModuleID) StatusPath() string {
	return "/" + string(m) + "/status"
}

// SummaryPath is the endpoint serving the module's summarized data. Not every
// module calls it "summary".
func (m ModuleID) SummaryPath() string {
	switch m {
	case ModuleFraud:
		return "/fraud/insights"
	case ModuleGreenGrid:
		return "/green-grid/data"
	default:
		return "/" + string(m) + "/summary"
	}
}

func (m ModuleID) Label() string {
	switch m {
	case ModuleExpense:
		return "Expense Sense"
	case ModuleFraud:
		return "Fraud Lens"
	case ModuleInventory:
		return "Smart Inventory"
	case ModuleGreenGrid:
		return "Green Grid"
	default:
		return string(m)
	}
}

type ModuleStatus struct {
	HasData bool `json:"has_data"`
}
