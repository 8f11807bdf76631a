package constants

// Terminal statuses per procurement kind, used by the dashboard completion
// rates. Status values are free-form in the source records, so membership
// goes through these sets instead of string comparisons scattered around.
var (
	PurchaseDone = map[string]bool{
		"received": true,
		"done":     true,
	}

	ManufactureDone = map[string]bool{
		"completed": true,
		"done":      true,
	}
)
