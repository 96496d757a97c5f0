package errors

type ExitCode int

const (
	// Bad flags or arguments
	UsageExitCode ExitCode = 64

	ConfigFailureExitCode = 70

	// Registry specific exit codes
	RegistryInitFailureExitCode     = 80
	UnresolvableExitCode            = 81
	ConstructionUnavailableExitCode = 82
	ConstructionFailureExitCode     = 83

	OutputFailureExitCode = 100
)
