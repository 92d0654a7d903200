package scans

import (
	"embed"
	"io/fs"
	"path/filepath"
)

//go:embed *.aamva
var contents embed.FS

func List() []string {
	result := make([]string, 0)
	_ = fs.WalkDir(contents, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".aamva" {
			result = append(result, path)
		}
		return nil
	})
	return result
}

func Payload(name string) (string, error) {
	data, err := fs.ReadFile(contents, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
