package reminder

// MergeByID unions an owner's reminders with reminders shared into them.
// The own slice keeps its order verbatim; shared entries are appended only
// when their id has not been seen. The id is the sole dedup key — two
// distinct reminders with the same title are both kept.
func MergeByID(own, shared []Reminder) []Reminder {
	out := make([]Reminder, 0, len(own)+len(shared))
	seen := make(map[string]struct{}, len(own))
	for _, r := range own {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	for _, r := range shared {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
