package trending

// Export unexported functions for testing
var (
	ParseCountForTest = parseCount
)
