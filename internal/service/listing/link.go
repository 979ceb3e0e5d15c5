package listing

// ResolveLink picks the destination URL for a set of link fields. A linked
// page wins over a linked document, which wins over the raw external URL.
// Lower-priority targets are silently ignored when several are set.
func ResolveLink(pageURL, documentURL, external string) string {
	if pageURL != "" {
		return pageURL
	}
	if documentURL != "" {
		return documentURL
	}
	return external
}
