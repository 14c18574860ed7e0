package domain

import (
	"bytes"
	"encoding/json"
)

// Snapshot is an opaque JSON payload returned by a platform endpoint. A nil
// Snapshot means the data is absent and encodes as JSON null.
type Snapshot = json.RawMessage

var emptyList = Snapshot("[]")

// AggregateContext is the merged module data handed to the assistant backend.
type AggregateContext struct {
	Health          Snapshot `json:"health"`
	Expense         Snapshot `json:"expense"`
	Fraud           Snapshot `json:"fraud"`
	Inventory       Snapshot `json:"inventory"`
	GreenGrid       Snapshot `json:"green_grid"`
	Carbon          Snapshot `json:"carbon"`
	Recommendations Snapshot `json:"recommendations"`
}

// EmptyContext returns a context with every slot at its default.
func EmptyContext() AggregateContext {
	return AggregateContext{Recommendations: EmptyList()}
}

func EmptyList() Snapshot {
	return append(Snapshot(nil), emptyList...)
}

func (c AggregateContext) Module(id ModuleID) Snapshot {
	switch id {
	case ModuleExpense:
		return c.Expense
	case ModuleFraud:
		return c.Fraud
	case ModuleInventory:
		return c.Inventory
	case ModuleGreenGrid:
		return c.GreenGrid
	default:
		return nil
	}
}

// Connected lists the modules whose slot holds data.
func (c AggregateContext) Connected() []ModuleID {
	connected := make([]ModuleID, 0, len(Modules))
	for _, id := range Modules {
		if !IsNull(c.Module(id)) {
			connected = append(connected, id)
		}
	}
	return connected
}

// IsNull reports whether a snapshot carries no data.
func IsNull(s Snapshot) bool {
	trimmed := bytes.TrimSpace(s)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// NormalizeSnapshot validates a raw payload. Blank bodies and JSON null map to
// nil; anything that is not valid JSON is rejected.
func NormalizeSnapshot(raw []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(raw)
	if IsNull(trimmed) {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrMalformedPayload
	}

	return append(Snapshot(nil), trimmed...), nil
}

// IsList reports whether a snapshot is a JSON array.
func IsList(s Snapshot) bool {
	trimmed := bytes.TrimSpace(s)
	return len(trimmed) > 0 && trimmed[0] == '['
}
