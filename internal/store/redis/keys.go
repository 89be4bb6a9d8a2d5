package redis

const (
	// KeyCredential holds the single persisted credential blob. One board
	// instance serves one identity, so there is exactly one.
	KeyCredential = "hblboard:credential"
)
