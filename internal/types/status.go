package types

// Status is the lifecycle status of a persisted row. It doubles as the
// soft-delete marker: queries exclude rows whose status is deleted unless they
// ask for them explicitly. Any changes to this type should be reflected in the
// database schema by running migrations.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)
