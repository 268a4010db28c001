package domain

// CrosspostMapping records that a local post was cross-posted to a blog.
type CrosspostMapping struct {
	// LocalID is the post ID on this instance.
	LocalID int64

	// BlogID is the store identifier of the target blog.
	BlogID string

	// RemoteID is the post ID on the target blog.
	RemoteID int64
}

// Valid reports whether all parts of the mapping are set.
func (m CrosspostMapping) Valid() bool {
	return m.LocalID > 0 && m.BlogID != "" && m.RemoteID > 0
}
