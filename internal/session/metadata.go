package session

// Metadata describes the media currently presented by a session.
type Metadata struct {
	Title  string
	Artist string
	Album  string
}

// metadataStore holds the session metadata and enforces title
// precedence: a title set through the session API always wins over a
// title reported by the playback instance.
type metadataStore struct {
	md *Metadata
}

// snapshot returns a copy of the current metadata, or nil if none was
// ever set.
func (m *metadataStore) snapshot() *Metadata {
	if m.md == nil {
		return nil
	}
	md := *m.md
	return &md
}

// set stores candidate unconditionally. A nil candidate or an empty
// candidate title falls back to fallbackTitle. Returns the stored
// value.
func (m *metadataStore) set(candidate *Metadata, fallbackTitle string) Metadata {
	md := Metadata{Title: fallbackTitle}
	if candidate != nil {
		md = *candidate
		if md.Title == "" {
			md.Title = fallbackTitle
		}
	}
	m.md = &md
	return md
}

// updateTitleFromPlayer applies a title reported by the playback
// instance. Any existing non-empty title wins and the update is
// dropped. Returns the stored metadata and whether it changed.
func (m *metadataStore) updateTitleFromPlayer(title string) (Metadata, bool) {
	if m.md == nil {
		m.md = &Metadata{Title: title}
		return *m.md, true
	}
	if m.md.Title != "" {
		return Metadata{}, false
	}
	m.md.Title = title
	return *m.md, true
}
