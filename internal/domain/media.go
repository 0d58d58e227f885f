package domain

// MediaKind selects which asset folder and which price apply to a delivery.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)
