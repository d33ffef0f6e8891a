package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2cv/internal/assets"
	"github.com/alnah/go-md2cv/internal/fileutil"
)

// defaultInitPath is written when init gets no path.
const defaultInitPath = "cv.md"

// ErrOutputExists is returned when init would overwrite a file.
var ErrOutputExists = errors.New("output file already exists")

// runInit writes a starter résumé from a built-in or custom template.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	resolver, err := assets.NewResolver(flags.assetPath)
	if err != nil {
		return err
	}

	if flags.list {
		names, err := resolver.Templates()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, strings.Join(names, "\n"))
		return nil
	}

	name := flags.template
	if name == "" {
		name = assets.DefaultTemplateName
	}
	content, err := resolver.LoadTemplate(name)
	if err != nil {
		return err
	}

	path := defaultInitPath
	if len(positional) > 0 {
		path = positional[0]
	}
	if err := validateMarkdownExtension(path); err != nil {
		return err
	}
	if !flags.force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s from template %q\n", path, name)
	return nil
}
