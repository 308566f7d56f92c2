package ibadah

import "sort"

// Merge combines the base guide with the hadith and Quran reference overlays
// into one timeline. Base items win on every shared field; overlays only
// attach their reference data, or insert brand-new items for unknown ids.
// The result is sorted by TimeOfDay ("HH:MM" sorts lexicographically);
// items without a time go last, keeping their insertion order.
func Merge(base []Item, hadithRefs []HadithOverlay, quranRefs []QuranOverlay) []Item {
	// Insertion-ordered working set; the index map only locates entries.
	merged := make([]Item, 0, len(base)+len(hadithRefs)+len(quranRefs))
	index := make(map[string]int, len(base))

	for _, it := range base {
		it.Source = SourceGeneral
		index[it.ID] = len(merged)
		merged = append(merged, it)
	}

	for _, ref := range hadithRefs {
		if i, ok := index[ref.ID]; ok {
			if ref.APIPath != "" {
				merged[i].HadithAPIPath = ref.APIPath
			}
			continue
		}
		index[ref.ID] = len(merged)
		merged = append(merged, Item{
			ID:              ref.ID,
			Phase:           ref.Phase,
			TimeOfDay:       ref.TimeOfDay,
			Title:           ref.Title,
			Description:     ref.Description,
			SourceReference: ref.SourceReference,
			HadithAPIPath:   ref.APIPath,
			Source:          SourceHadith,
		})
	}

	for _, ref := range quranRefs {
		qr := &QuranRef{
			SurahNumber: ref.SurahNumber,
			AyahNumber:  ref.AyahNumber,
			APIPath:     ref.APIPath,
		}
		if i, ok := index[ref.ID]; ok {
			if ref.APIPath != "" {
				merged[i].Quran = qr
			}
			continue
		}
		index[ref.ID] = len(merged)
		merged = append(merged, Item{
			ID:          ref.ID,
			Phase:       ref.Phase,
			TimeOfDay:   ref.TimeOfDay,
			Title:       ref.Title,
			Description: ref.Description,
			Page:        ref.Page,
			Quran:       qr,
			Source:      SourceQuran,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].TimeOfDay, merged[j].TimeOfDay
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
	return merged
}
