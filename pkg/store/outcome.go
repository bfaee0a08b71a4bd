package store

// Outcome classifies what a write operation did to its target when the
// prior state was unknown.
type Outcome int

const (
	// Created means the target did not exist before and now holds the
	// supplied content.
	Created Outcome = iota

	// Updated means the target existed and its content was replaced.
	Updated

	// Unchanged means the existing content already equaled the supplied
	// content and the target was left untouched. Only legal after a
	// content-equality check.
	Unchanged
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}
