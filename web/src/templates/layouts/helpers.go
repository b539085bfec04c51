package layouts

// DefaultTitle is used when a page has no title of its own.
const DefaultTitle = "Inscrições abertas"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title
	}
	return DefaultTitle
}
