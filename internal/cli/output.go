package cli

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var titleCaser = cases.Title(language.English)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrCLI.MsgErr("unable to format output", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// title turns a command name such as "subaccount-info" into "Subaccount Info".
func title(name string) string {
	return titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(name))
}

// render prints a command result. With --field only the selected value is
// printed; with --json the whole result is printed as JSON; otherwise a
// titled YAML view is shown.
func (o *rootOptions) render(cmd *cobra.Command, heading string, v any) error {
	w := cmd.OutOrStdout()

	if o.field != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return ErrCLI.MsgErr("unable to format output", err)
		}
		res := gjson.GetBytes(data, o.field)
		if !res.Exists() {
			return ErrInvalidArgs.Msg("field " + o.field + " not found in response")
		}
		if o.jsonOutput || res.IsObject() || res.IsArray() {
			_, err = fmt.Fprintln(w, res.Raw)
		} else {
			_, err = fmt.Fprintln(w, res.String())
		}
		return err
	}

	if o.jsonOutput {
		return printJSON(w, v)
	}

	okLabel.Fprintf(w, "%s\n", title(heading))
	if v == nil {
		return nil
	}
	// round trip through JSON so struct results use their wire names
	data, err := json.Marshal(v)
	if err != nil {
		return ErrCLI.MsgErr("unable to format output", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return ErrCLI.MsgErr("unable to format output", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return ErrCLI.MsgErr("unable to format output", err)
	}
	_, err = w.Write(out)
	return err
}

// printText prints a plain string result, honoring --json.
func (o *rootOptions) printText(cmd *cobra.Command, key, value string) error {
	if o.jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{key: value})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
