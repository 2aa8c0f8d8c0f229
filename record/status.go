package record

// Dataset statuses. A pending dataset can be freely edited and deleted;
// publishing is one-way and published datasets refuse deletion.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// Collection statuses.
const (
	StatusPrivate = "private"
	StatusPublic  = "public"
)

// ValidDataStatus reports whether s is a valid dataset status.
func ValidDataStatus(s string) bool {
	return s == StatusPending || s == StatusPublished
}

// ValidCollectionStatus reports whether s is a valid collection status.
func ValidCollectionStatus(s string) bool {
	return s == StatusPrivate || s == StatusPublic
}
