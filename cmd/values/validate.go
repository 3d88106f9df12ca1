package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	govalues "github.com/reoring/govalues"
	"github.com/reoring/govalues/codec"
	"github.com/reoring/govalues/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Apply a payload to the collection and print the result",
	Long: `Reads a JSON or YAML payload of id -> value pairs, applies it to the
collection described by --schema and prints the sanitized values as JSON.
Without --patch, ids missing from the payload are reset to their defaults.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("data", "-", "Payload file (JSON or YAML); - reads stdin")
	validateCmd.Flags().Bool("patch", false, "Only update ids present in the payload")
	validateCmd.Flags().Int("format", 0, "Print formatted values using these flag bits")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	defs, err := readDefinitions(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	c, err := defs.Collection(loader.WithCollectionOptions(govalues.WithLogger(logger)))
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("data")
	payload, err := readPayload(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	patch, _ := cmd.Flags().GetBool("patch")
	var next *govalues.Collection
	if patch {
		next, err = c.Patch(payload)
	} else {
		next, err = c.UpdateValues(payload)
	}
	if err != nil {
		if iss, ok := govalues.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
			}
			return errors.New("validation failed")
		}
		return err
	}

	out := next.Raw()
	if cmd.Flags().Changed("format") {
		flags, _ := cmd.Flags().GetInt("format")
		out = next.Formatted(govalues.Flags(flags))
	}
	b, err := codec.EncodeJSON(out)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func readPayload(stdin io.Reader, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec.DecodeYAML(data)
	default:
		return codec.DecodeJSON(data)
	}
}
