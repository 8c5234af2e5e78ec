package planner

// GroupByDay buckets entries under all seven weekdays in Monday-first order.
// Every weekday is present even when its list is empty, and each entry lands
// in exactly one bucket chosen by its Day field regardless of Date.
func GroupByDay(entries []Entry) []DayGroup {
	groups := make([]DayGroup, len(WeekOrder))
	index := make(map[int]int, len(WeekOrder))
	for i, day := range WeekOrder {
		groups[i] = DayGroup{Day: day}
		index[int(day)] = i
	}

	for _, entry := range entries {
		i := index[int(entry.Day)]
		groups[i].Entries = append(groups[i].Entries, entry)
	}

	return groups
}
