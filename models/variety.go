package models

// Variety is a potato cultivar classification used on quote requests
// and seed batches. Sales and inventory keep a free-text variety so
// staff can record blends and off-catalog stock.
type Variety string

const (
	VarietyRusset     Variety = "russet"
	VarietyRed        Variety = "red"
	VarietyYukon      Variety = "yukon"
	VarietyFingerling Variety = "fingerling"
	VarietySweet      Variety = "sweet"
	VarietyMixed      Variety = "mixed"
)

var varietyLabels = map[Variety]string{
	VarietyRusset:     "Russet Burbank",
	VarietyRed:        "Red Pontiac",
	VarietyYukon:      "Yukon Gold",
	VarietyFingerling: "Fingerling",
	VarietySweet:      "Sweet Potato",
	VarietyMixed:      "Mixed Varieties",
}

// Label returns the display name for the variety
func (v Variety) Label() string {
	if label, ok := varietyLabels[v]; ok {
		return label
	}
	return string(v)
}

// SeedVarieties lists the varieties a seed batch can be purchased as.
// Mixed is a quote-only bucket, not a plantable cultivar.
func SeedVarieties() []Variety {
	return []Variety{VarietyRusset, VarietyRed, VarietyYukon, VarietyFingerling, VarietySweet}
}

// QuoteVarieties lists the varieties offered on the public quote form
func QuoteVarieties() []Variety {
	return []Variety{VarietyRusset, VarietyRed, VarietyYukon, VarietyFingerling, VarietySweet, VarietyMixed}
}

// ValidQuoteVariety reports whether v is offered on the quote form
func ValidQuoteVariety(v Variety) bool {
	for _, known := range QuoteVarieties() {
		if v == known {
			return true
		}
	}
	return false
}

// ValidSeedVariety reports whether v can be recorded on a seed batch
func ValidSeedVariety(v Variety) bool {
	for _, known := range SeedVarieties() {
		if v == known {
			return true
		}
	}
	return false
}
