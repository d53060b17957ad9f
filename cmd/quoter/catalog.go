package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quoter/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the factory chosen for every node kind",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	catalogCmd.Flags().String("factory", "", "only show kinds built by this factory")
}

type catalogParamJSON struct {
	Name     string `json:"name"`
	Slot     int    `json:"slot"`
	Optional bool   `json:"optional,omitempty"`
}

type catalogEntryJSON struct {
	Kind    string             `json:"kind"`
	Factory string             `json:"factory"`
	Returns string             `json:"returns"`
	Params  []catalogParamJSON `json:"params"`
	Withs   []string           `json:"withs,omitempty"`
}

type catalogJSON struct {
	Entries     []catalogEntryJSON `json:"entries"`
	Unsupported []string           `json:"unsupported,omitempty"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	factory, _ := cmd.Flags().GetString("factory")

	entries := catalog.Entries()
	if factory != "" {
		entries = catalog.ByFactory(factory)
		if len(entries) == 0 {
			return fmt.Errorf("no node kind is built by %q", factory)
		}
	}

	switch format {
	case "pretty":
		writeCatalogPretty(cmd.OutOrStdout(), entries, factory == "")
		return nil
	case "json":
		return writeCatalogJSON(cmd.OutOrStdout(), entries, factory == "")
	}
	return fmt.Errorf("unknown format: %s", format)
}

func writeCatalogPretty(w io.Writer, entries []*catalog.Entry, withUnsupported bool) {
	for _, e := range entries {
		names := make([]string, len(e.Params))
		for i, p := range e.Params {
			names[i] = p.Name
			if p.Optional {
				names[i] += "?"
			}
		}
		fmt.Fprintf(w, "%-40s %s(%s)", e.Kind, e.Factory, strings.Join(names, ", "))
		for _, with := range e.Withs {
			fmt.Fprintf(w, ".%s", with.Method)
		}
		fmt.Fprintln(w)
	}
	if !withUnsupported {
		return
	}
	for _, k := range catalog.Unsupported() {
		fmt.Fprintf(w, "%-40s <unsupported>\n", k)
	}
}

func writeCatalogJSON(w io.Writer, entries []*catalog.Entry, withUnsupported bool) error {
	out := catalogJSON{Entries: make([]catalogEntryJSON, 0, len(entries))}
	for _, e := range entries {
		ej := catalogEntryJSON{
			Kind:    e.Kind.String(),
			Factory: e.Factory,
			Returns: e.ReturnType,
			Params:  make([]catalogParamJSON, len(e.Params)),
		}
		for i, p := range e.Params {
			ej.Params[i] = catalogParamJSON{Name: p.Name, Slot: p.Slot, Optional: p.Optional}
		}
		for _, with := range e.Withs {
			ej.Withs = append(ej.Withs, with.Method)
		}
		out.Entries = append(out.Entries, ej)
	}
	if withUnsupported {
		for _, k := range catalog.Unsupported() {
			out.Unsupported = append(out.Unsupported, k.String())
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
