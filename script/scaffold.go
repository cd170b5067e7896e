package script

import (
	"errors"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/util"
	"github.com/samber/lo"
)

var scaffoldTemplate = lo.Must(template.New("script").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.ScriptTemplate))

// Scaffold writes a starter script named name into dir and returns its path.
// An existing file is never overwritten.
func Scaffold(dir, name, author string) (string, error) {
	filename := util.SanitizeFilename(name)
	if filename == "" {
		return "", errors.New("script name is empty after sanitizing")
	}

	target := filepath.Join(dir, filename+constant.ScriptExt)
	exists, err := filesystem.API().Exists(target)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New(target + " already exists")
	}

	f, err := filesystem.API().Create(target)
	if err != nil {
		return "", err
	}
	defer util.Ignore(f.Close)

	data := struct {
		Name   string
		Author string
	}{Name: name, Author: author}

	if err := scaffoldTemplate.Execute(f, data); err != nil {
		return "", err
	}

	return target, nil
}
