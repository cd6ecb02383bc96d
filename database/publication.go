package database

import "time"

// ResolvePublication computes the publication timestamp for a post given its
// published flag and status. The pair behaves as a single state: the
// timestamp is non-nil exactly when published is true AND status is
// PUBLISHED. A previously published post keeps its original timestamp when
// re-published; every other combination clears it.
func ResolvePublication(published bool, status PostStatus, current *time.Time, now func() time.Time) *time.Time {
	if !published || status != StatusPublished {
		return nil
	}

	if current != nil {
		return current
	}

	if now == nil {
		now = time.Now
	}

	ts := now().UTC()

	return &ts
}
