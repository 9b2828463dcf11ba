//go:generate go run go.uber.org/mock/mockgen -source=i18n.go -destination=../../mocks/mock_i18n.go -package=mocks
package output

// T exposes a minimal i18n contract for user-facing texts.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
