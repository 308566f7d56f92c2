// Package ibadah merges the static Ramadhan worship-guide datasets into a
// single time-sorted daily timeline and answers "what is coming up" queries
// against it.
package ibadah

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Source tags which dataset an item first came from.
type Source string

const (
	SourceGeneral Source = "general"
	SourceHadith  Source = "hadith"
	SourceQuran   Source = "quran"
)

// QuranRef points at the verse backing an item, with the EQuran.id API path
// that serves it.
type QuranRef struct {
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	APIPath     string `json:"apiPath"`
}

// Item is one entry on the daily timeline. IDs are unique across all three
// datasets; overlays contribute reference fields to an existing id but never
// replace its title, description, or time.
type Item struct {
	ID              string    `json:"id"`
	Phase           string    `json:"phase"`
	TimeOfDay       string    `json:"timeOfDay,omitempty"` // "HH:MM", may be absent
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Supplication    string    `json:"supplication,omitempty"`
	SourceReference string    `json:"sourceReference,omitempty"`
	Page            int       `json:"page,omitempty"`
	HadithAPIPath   string    `json:"hadithApiPath,omitempty"`
	Quran           *QuranRef `json:"quran,omitempty"`
	Source          Source    `json:"source"`
}

// HadithOverlay is one record of the hadith-reference dataset. Records whose
// id matches a base item only attach APIPath; the rest become new items.
type HadithOverlay struct {
	ID              string `json:"id"`
	Phase           string `json:"phase,omitempty"`
	TimeOfDay       string `json:"timeOfDay,omitempty"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	SourceReference string `json:"sourceReference,omitempty"`
	APIPath         string `json:"apiPath,omitempty"`
}

// QuranOverlay is one record of the Quran-reference dataset.
type QuranOverlay struct {
	ID          string `json:"id"`
	Phase       string `json:"phase,omitempty"`
	TimeOfDay   string `json:"timeOfDay,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	APIPath     string `json:"apiPath"`
	Page        int    `json:"page,omitempty"`
}

//go:embed data/base.json data/hadith_refs.json data/quran_refs.json
var dataFS embed.FS

var (
	defaultOnce     sync.Once
	defaultSchedule []Item
)

// DefaultSchedule returns the merged, time-sorted timeline built from the
// embedded datasets. The slice is shared; callers must not mutate it.
func DefaultSchedule() []Item {
	defaultOnce.Do(func() {
		base, hadith, quran, err := loadDatasets()
		if err != nil {
			panic(fmt.Sprintf("ibadah: embedded datasets are invalid: %v", err))
		}
		defaultSchedule = Merge(base, hadith, quran)
	})
	return defaultSchedule
}

func loadDatasets() ([]Item, []HadithOverlay, []QuranOverlay, error) {
	var base []Item
	if err := loadJSON("data/base.json", &base); err != nil {
		return nil, nil, nil, err
	}
	var hadith []HadithOverlay
	if err := loadJSON("data/hadith_refs.json", &hadith); err != nil {
		return nil, nil, nil, err
	}
	var quran []QuranOverlay
	if err := loadJSON("data/quran_refs.json", &quran); err != nil {
		return nil, nil, nil, err
	}
	return base, hadith, quran, nil
}

func loadJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
