package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// Public site records
		&ContactMessage{},
		&Newsletter{},
		&QuoteRequest{},

		// Business ledger
		&SeedBatch{},
		&PlantingRecord{}, // depends on: SeedBatch
		&Sale{},
		&Inventory{},
		&Expense{},
	}
}
