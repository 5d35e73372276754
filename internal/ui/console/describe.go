package console

// Describe builds the Description cell from a pattern's optional description
// and URL. The URL is a prefix the matched text is appended to verbatim.
func Describe(description, url *string, text string) string {
	switch {
	case description != nil && url != nil:
		return *description + "\n Check URL: " + *url + text
	case description != nil:
		return *description
	case url != nil:
		return "URL:\n " + *url + text
	default:
		return "None"
	}
}
