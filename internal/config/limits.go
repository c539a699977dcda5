package config

// Name length ceiling shared by folders and files. Names are trimmed before
// the length check and must keep at least one non-whitespace character.
const MaxNameLength = 255

// Upload ceilings: per-file size and files per request.
const (
	MaxUploadFileSize = 100 << 20 // 100 MB
	MaxUploadFiles    = 10
)
