package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errUsage = errors.New("missing arguments")

// trimExt drops the last extension of p, keeping its directory.
func trimExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// resolveOut returns outFlag when set, otherwise the input path with its last
// extension replaced by suffix. The parent directory of an explicit output
// is created.
func resolveOut(in, outFlag, suffix string) (string, error) {
	outFlag = strings.TrimSpace(outFlag)
	if outFlag == "" {
		out := trimExt(in) + suffix
		if out == in {
			return "", fmt.Errorf("output would overwrite input %q; set --output", in)
		}
		return out, nil
	}
	out := filepath.Clean(outFlag)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	return out, nil
}

// singleInput returns the only positional argument.
func singleInput(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected one input file, got %d", errUsage, len(args))
	}
	return args[0], nil
}

// splitIcoArgs separates icon inputs from the output path. Without --output
// the last argument is the output.
func splitIcoArgs(args []string, outFlag string) (inputs []string, out string, err error) {
	if outFlag != "" {
		if len(args) == 0 {
			return nil, "", fmt.Errorf("%w: no input images", errUsage)
		}
		out, err = resolveOut("", outFlag, "")
		return args, out, err
	}
	if len(args) < 2 {
		return nil, "", fmt.Errorf("%w: expected <image>... <output.ico>", errUsage)
	}
	return args[:len(args)-1], args[len(args)-1], nil
}

// sidecarPath resolves a file referenced by uri next to the document at doc.
func sidecarPath(doc, uri string) string {
	return filepath.Join(filepath.Dir(doc), filepath.FromSlash(uri))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
