package store

// maxRecentScans bounds the recency list.
const maxRecentScans = 20

// AddRecentScan records a product view: any existing occurrence is removed,
// the id is prepended, and the list is truncated to the newest 20 entries.
func (s *Store) AddRecentScan(productID string) {
	s.mu.Lock()
	scans := make([]string, 0, len(s.snap.RecentScans)+1)
	scans = append(scans, productID)
	for _, id := range s.snap.RecentScans {
		if id != productID {
			scans = append(scans, id)
		}
	}
	if len(scans) > maxRecentScans {
		scans = scans[:maxRecentScans]
	}
	s.snap.RecentScans = scans
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "scan", Action: "created", ID: productID}, after)
}

// RecentScans returns the recency list, most recent first.
func (s *Store) RecentScans() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.snap.RecentScans...)
}
