package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mgomes/monkey/monkey"
	"github.com/spf13/cobra"
)

var sourceExtensions = map[string]struct{}{
	".mk":     {},
	".monkey": {},
}

func newFmtCommand() *cobra.Command {
	var write, check bool
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path>...",
		Short: "Reformat Monkey source files",
		Long:  "Parse each .mk or .monkey file and print it in canonical layout. Directories are walked recursively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("monkey fmt: path required")
			}

			files, err := collectSourceFiles(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			changedCount := 0
			for _, path := range files {
				originalBytes, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				original := string(originalBytes)
				formatted, err := monkey.Format(original)
				if err != nil {
					return describeParseErrors(path, err)
				}
				changed := formatted != original
				if changed {
					changedCount++
				}

				switch {
				case write && changed:
					info, err := os.Stat(path)
					if err != nil {
						return fmt.Errorf("stat %s: %w", path, err)
					}
					if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
				case check && changed:
					fmt.Fprintln(out, path)
				case !write && !check:
					fmt.Fprint(out, formatted)
				}
			}

			if check && changedCount > 0 {
				return fmt.Errorf("monkey fmt: %d file(s) need formatting", changedCount)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source files instead of stdout")
	cmd.Flags().BoolVar(&check, "check", false, "fail if any source file needs formatting")
	return cmd
}

func collectSourceFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		if _, ok := sourceExtensions[filepath.Ext(path)]; !ok {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			addFile(target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
