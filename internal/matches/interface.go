package matches

// MatchStore defines the interface for interacting with the loaded match
// dataset. The store is populated wholesale exactly once per process lifecycle
// and is read-only afterwards.
type MatchStore interface {
	ReplaceAll(records []Record) error
	All() ([]Record, error)
	ForPlayer(name string) ([]Record, error)
	Count() (int, error)
	Clear()
}
