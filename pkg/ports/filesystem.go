package ports

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories if
	// necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// FileSize returns the size of a file in bytes.
	FileSize(path string) (int64, error)

	// Glob returns the files matching pattern in lexical order.
	Glob(pattern string) ([]string, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
