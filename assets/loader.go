package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const shaderDir = "shaders"

/*
	plain text shader sources below <path>/shaders/

	sources are cached until invalidated, the watcher
	reports which ones changed on disk.
*/
type Loader struct {
	lock sync.Mutex
	path string

	shaders map[string]string
}

func NewLoader(path string) *Loader {
	return &Loader{
		path:    path,
		shaders: map[string]string{},
	}
}

// ShaderDir is the directory shader sources are read from
func (l *Loader) ShaderDir() string {
	return filepath.Join(l.path, shaderDir)
}

func (l *Loader) ShaderSource(file string) (string, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if s, found := l.shaders[file]; found {
		return s, nil
	}

	if file == "" || filepath.Base(file) != file {
		return "", fmt.Errorf("invalid shader file name %q", file)
	}

	data, err := os.ReadFile(filepath.Join(l.ShaderDir(), file))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", file, err)
	}

	s := string(data)
	l.shaders[file] = s
	return s, nil
}

func (l *Loader) Invalidate(file string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	delete(l.shaders, file)
}
