package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the whole content of path. The mode only applies when
	// the file is created.
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
}
