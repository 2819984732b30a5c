package redis

const (
	// keyPrefixBookmark is the prefix for mirrored bookmark entries
	keyPrefixBookmark = "linkshelf:bookmark:"
	// keyPrefixOwner is the prefix for the per-owner set of mirrored ids
	keyPrefixOwner = "linkshelf:owner:"
)

// bookmarkKey returns the redis key for one mirrored bookmark
func bookmarkKey(id string) string {
	return keyPrefixBookmark + id
}

// ownerSetKey returns the redis key for the set of one owner's bookmark ids
func ownerSetKey(ownerID string) string {
	return keyPrefixOwner + ownerID + ":bookmarks"
}
