package usecase

// Export unexported functions for testing
var (
	BuildHotReposQueryForTest = buildHotReposQuery
	BuildSystemPromptForTest  = buildSystemPrompt
	FormatReposForTest        = formatRepos
	ToolErrorMessageForTest   = toolErrorMessage
)
