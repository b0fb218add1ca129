package utils

import (
	"os"
)

// FileReader reads source files through a modification-time validated cache,
// so repeated passes over the same tree stay cheap
type FileReader struct {
	cache *Cache[string, []byte]
}

// NewFileReader creates a file reader with an empty cache
func NewFileReader() *FileReader {
	return &FileReader{
		cache: NewCache[string, []byte](),
	}
}

// ReadFile returns the file contents, rereading only when the file changed
// on disk since the last read
func (r *FileReader) ReadFile(path string) ([]byte, error) {
	if data, ok := r.cache.GetWithFileValidation(path, path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapReadError(path, err)
	}

	// a failed stat only means the next read misses the cache
	_ = r.cache.SetWithFileInfo(path, data, path)

	return data, nil
}

// CachedCount returns the number of files currently cached
func (r *FileReader) CachedCount() int {
	return r.cache.Size()
}

// InvalidateAll drops every cached entry
func (r *FileReader) InvalidateAll() {
	r.cache.Clear()
}
