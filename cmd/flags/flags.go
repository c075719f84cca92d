/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flags defines the transform flags shared by svginline commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/svginline/transform"
)

// Viper keys for the persistent prefix flags.
const (
	ClassPrefixKey = "classPrefix"
	IDPrefixKey    = "idPrefix"
)

// AddTransformFlags registers the per-command transform flags on cmd.
func AddTransformFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("remove-tags", nil, "Tags whose subtree is removed (comma-separated)")
	cmd.Flags().StringSlice("remove-attributes", nil, "Attributes removed from every element (comma-separated)")
	cmd.Flags().StringSlice("warn-tags", nil, "Tags reported as forbidden (comma-separated)")
	cmd.Flags().StringSlice("warn-attributes", nil, "Attributes reported as forbidden (comma-separated)")
	cmd.Flags().Bool("keep-root-size", false, "Keep width and height on the root <svg>")
}

// Overrides returns the transform options set on the command line.
// Prefixes come from viper, so they may also be set through the
// environment (SVGINLINE_CLASSPREFIX, SVGINLINE_IDPREFIX).
// Options that were not given stay unset.
func Overrides(cmd *cobra.Command) transform.Options {
	var o transform.Options

	if viper.IsSet(ClassPrefixKey) {
		o.ClassPrefix = transform.String(viper.GetString(ClassPrefixKey))
	}
	if viper.IsSet(IDPrefixKey) {
		o.IDPrefix = transform.String(viper.GetString(IDPrefixKey))
	}

	o.RemovedTags = changedSlice(cmd, "remove-tags")
	o.RemovedAttributes = changedSlice(cmd, "remove-attributes")
	o.WarningTags = changedSlice(cmd, "warn-tags")
	o.WarningAttributes = changedSlice(cmd, "warn-attributes")

	if cmd.Flags().Changed("keep-root-size") {
		keep, _ := cmd.Flags().GetBool("keep-root-size")
		o.RemoveRootSVGAttributes = transform.Bool(!keep)
	}
	return o
}

func changedSlice(cmd *cobra.Command, name string) []string {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	values, _ := cmd.Flags().GetStringSlice(name)
	if values == nil {
		values = []string{}
	}
	return values
}
