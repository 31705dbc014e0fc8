package bithub

import (
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type DataDir struct {
	prefix string
	mtx    sync.Mutex
}

func NewDataDir(prefix string) (*DataDir, error) {
	expanded, err := ExpandHome(prefix)
	if err != nil {
		return nil, err
	}
	res := &DataDir{
		prefix: expanded,
	}
	if err := res.ensureDir(res.prefix); err != nil {
		return nil, errors.Wrap(err, "error creating prefix")
	}
	return res, nil
}

func (d *DataDir) Path() string {
	return d.prefix
}

func (d *DataDir) ConfigFile() string {
	return filepath.Join(d.prefix, "config.yml")
}

func (d *DataDir) WordlistDir() string {
	return filepath.Join(d.prefix, "wordlists")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	hd, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "error reading home directory")
	}
	return filepath.Join(hd, strings.TrimPrefix(p, "~")), nil
}

func (d *DataDir) ensureDir(dirPath string) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	dirExists, err := d.dirExists(dirPath)
	if err != nil {
		return err
	}
	if dirExists {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0o700); err != nil {
		return errors.Wrap(err, "error creating directory")
	}
	return nil
}

func (d *DataDir) dirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, errors.Wrap(err, "directory read error")
	}
	if !stat.IsDir() {
		return false, errors.New("not a directory")
	}
	return true, nil
}
