// Package meal ranks a fixed meal catalog against the weather and the time
// left before imsak or Tarawih.
package meal

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Type selects which side of the catalog a plan draws from.
type Type string

const (
	TypeSahur Type = "sahur"
	TypeIftar Type = "iftar"
)

// Bucket is the prep-time class a meal belongs to. Thresholds differ by
// meal type, see SelectBucket.
type Bucket string

const (
	BucketQuick  Bucket = "quick"
	BucketMedium Bucket = "medium"
	BucketSlow   Bucket = "slow"
)

// Hydration grades how much a dish contributes to rehydration.
type Hydration string

const (
	HydrationLow      Hydration = "low"
	HydrationMedium   Hydration = "medium"
	HydrationHigh     Hydration = "high"
	HydrationVeryHigh Hydration = "very_high"
)

// Meal is one catalog entry. The boolean traits are authored with the data,
// so the ranker never has to guess a dish's character from its name.
type Meal struct {
	Name            string    `json:"name"`
	PrepTimeMinutes int       `json:"prepTimeMinutes"`
	Ingredients     []string  `json:"ingredients"`
	Calories        int       `json:"calories"`
	Hydration       Hydration `json:"hydration"`
	Benefits        string    `json:"benefits"`
	Tips            string    `json:"tips"`

	Rich        bool `json:"rich,omitempty"`        // coconut-milk / fat-heavy dish
	Warming     bool `json:"warming,omitempty"`     // hot soup or porridge
	Chilled     bool `json:"chilled,omitempty"`     // iced or blended cold
	TarawihSafe bool `json:"tarawihSafe,omitempty"` // light enough to eat before Tarawih
}

// Catalog holds the full meal database, partitioned by meal type and
// prep-time bucket. It is read-only after construction and safe to share.
type Catalog map[Type]map[Bucket][]Meal

// Meals returns the catalog entries for one type/bucket pair, or nil.
func (c Catalog) Meals(t Type, b Bucket) []Meal {
	return c[t][b]
}

//go:embed catalog.json
var catalogJSON []byte

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     Catalog
)

// DefaultCatalog returns the embedded meal database.
func DefaultCatalog() Catalog {
	defaultCatalogOnce.Do(func() {
		if err := json.Unmarshal(catalogJSON, &defaultCatalog); err != nil {
			panic(fmt.Sprintf("meal: embedded catalog is invalid: %v", err))
		}
	})
	return defaultCatalog
}
