package entities

// RevertEvent is a revision classified as undoing a prior change. It carries
// all the revision fields plus the size of the immediately preceding revision,
// when that revision had one. Derived read-only by the revert classifier.
type RevertEvent struct {
	Revision
	RevertedToSize *int `json:"reverted_to_size,omitempty"`
}
