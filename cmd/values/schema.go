package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/govalues/codec"
	"github.com/reoring/govalues/openapi"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema export of the definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := readDefinitions(cmd)
		if err != nil {
			return err
		}
		c, err := defs.Collection()
		if err != nil {
			return err
		}
		sch, err := c.JSONSchema()
		if err != nil {
			return err
		}
		return printJSON(cmd, sch)
	},
}

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the definitions as an OpenAPI 3 object schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := readDefinitions(cmd)
		if err != nil {
			return err
		}
		c, err := defs.Collection()
		if err != nil {
			return err
		}
		sch, err := openapi.FromCollection(cmd.Context(), c)
		if err != nil {
			return err
		}
		return printJSON(cmd, sch)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd, openapiCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := codec.EncodeJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
