package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resolution errors
const (
	// ErrCodeUnknownGroup indicates the active group was never built.
	ErrCodeUnknownGroup ErrorCode = "UNKNOWN_GROUP"
	// ErrCodeUnknownReference indicates the group exists but holds no entry under the name.
	ErrCodeUnknownReference ErrorCode = "UNKNOWN_REFERENCE"
)

// Binding errors
const (
	// ErrCodeModuleResolution indicates a lazy module binding names an unregistered module.
	ErrCodeModuleResolution ErrorCode = "MODULE_RESOLUTION"
	// ErrCodeInvalidReference indicates a value passed to AddRef has no derivable name.
	ErrCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a group definition file failed to load or validate.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
