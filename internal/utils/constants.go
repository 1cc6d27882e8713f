package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Messages shared by the entry point and the command layer.
const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes the terminal error.
	ApplicationExecutionFailedMessage = "tree2clip execution failed"
)
