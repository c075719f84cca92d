/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for svginline.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/svginline/config"
	"bennypowers.dev/svginline/fs"
	"bennypowers.dev/svginline/sanitize"
	"bennypowers.dev/svginline/token"
	"bennypowers.dev/svginline/tokenizer"
	"bennypowers.dev/svginline/transform"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List ids and classes defined in SVG files",
	Long: `List the ids and class names each SVG file defines, to help choose
prefixes. Classes are collected from class attributes and from <style>
selectors.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// Inventory lists the names a single SVG file defines.
type Inventory struct {
	File    string   `json:"file"`
	IDs     []string `json:"ids"`
	Classes []string `json:"classes"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	var files []string
	var err error
	if len(args) == 0 {
		files, err = cfg.ExpandFiles(filesystem, ".")
	} else {
		files, err = config.ExpandPatterns(filesystem, ".", args)
	}
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	inventories := collect(filesystem, files, cmd.ErrOrStderr())

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), inventories)
	case "table", "":
		return outputTable(cmd.OutOrStdout(), inventories)
	default:
		return fmt.Errorf("unknown format %q (valid: table, json)", format)
	}
}

// collect inventories every readable, tokenizable file. Failures are
// reported on stderr and skipped.
func collect(filesystem fs.FileSystem, files []string, stderr io.Writer) []Inventory {
	inventories := make([]Inventory, 0, len(files))
	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", file, err)
			continue
		}
		inv, err := Collect(string(data))
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing %s: %v\n", file, err)
			continue
		}
		inv.File = file
		inventories = append(inventories, inv)
	}
	return inventories
}

// Collect returns the sorted, de-duplicated ids and classes in markup.
func Collect(markup string) (Inventory, error) {
	tokens, err := tokenizer.Tokenize(sanitize.Sanitize(markup))
	if err != nil {
		return Inventory{}, err
	}

	ids := make(map[string]struct{})
	classes := make(map[string]struct{})
	inStyle := false

	for _, tok := range tokens {
		switch t := tok.(type) {
		case *token.StartTag:
			if id, ok := t.Get("id"); ok && id != "" {
				ids[id] = struct{}{}
			}
			if class, ok := t.Get("class"); ok {
				for _, name := range strings.Fields(class) {
					classes[name] = struct{}{}
				}
			}
			inStyle = t.Name == "style" && !t.SelfClosing
		case *token.EndTag:
			if t.Name == "style" {
				inStyle = false
			}
		case *token.Chars:
			if inStyle {
				for _, name := range transform.SelectorClasses(t.Text) {
					classes[name] = struct{}{}
				}
			}
		}
	}

	return Inventory{IDs: sortedKeys(ids), Classes: sortedKeys(classes)}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func outputTable(w io.Writer, inventories []Inventory) error {
	for _, inv := range inventories {
		fmt.Fprintln(w, inv.File)
		fmt.Fprintf(w, "  %-8s %s\n", "ids", joinOrDash(inv.IDs))
		fmt.Fprintf(w, "  %-8s %s\n", "classes", joinOrDash(inv.Classes))
	}
	return nil
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func outputJSON(w io.Writer, inventories []Inventory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(inventories)
}
