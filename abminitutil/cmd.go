/*
Copyright © 2023 the abminit authors.
This file is part of abminit.

abminit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

abminit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with abminit.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package abminitutil holds the command-line interface and configuration
// for the abminit converter.
package abminitutil

import (
	"context"
	"fmt"

	"github.com/cellmodel/abminit"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to abminit.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "WorkingLocation",
			usage: `
              WorkingLocation is the storage location holding the processed
              sample tables and receiving the converted initialization
              files. It is either a local directory or a bucket address in
              the form 's3://name' or 'gs://name'.`,
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Name",
			usage: `
              Name is the series name. It prefixes every storage key.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Keys",
			usage: `
              Keys lists the condition keys to convert. Each key is one
              conversion unit with its own processed sample table.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Regions",
			usage: `
              Regions lists the sub-cellular region names with their own
              processed sample tables (for example NUCLEUS). Samples not
              covered by any region table are tagged DEFAULT.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Margins",
			usage: `
              Margins gives the margin sizes in the x, y, and z directions
              added around the transformed samples.`,
			defaultVal: []int{0, 0, 0},
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "ReferenceLocation",
			usage: `
              ReferenceLocation is the storage location of the optional
              per-cell reference table. Leave empty to derive all critical
              values from the samples.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "ReferenceKey",
			usage: `
              ReferenceKey is the storage key of the reference table within
              ReferenceLocation.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "TransformReferenceKey",
			usage: `
              TransformReferenceKey is the storage key of an optional
              coordinate table that fixes the grid step sizes and extents
              for all conditions instead of deriving them per condition.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Resolution",
			usage: `
              Resolution is the sampling resolution in physical units per
              voxel. Population statistics and reference values are
              rescaled onto the grid by this factor.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "PottsTerms",
			usage: `
              PottsTerms lists the Hamiltonian terms enabled in the
              generated setup descriptor.`,
			defaultVal: []string{"volume", "adhesion"},
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ABMINIT")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, v, option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, v, option.usage)
				}
			case []int:
				if option.shorthand == "" {
					set.IntSlice(option.name, v, option.usage)
				} else {
					set.IntSliceP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("abminit: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "abminit",
	Short: "Convert cell shape samples into ARCADE initialization files.",
	Long: `abminit converts discretized 3D cell shape sample tables into the
initialization file formats consumed by ARCADE-style agent-based
simulations.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'ABMINIT_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of abminit.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("abminit v%s\n", abminit.Version)
	},
	DisableAutoGenTag: true,
}

// convertCmd runs the converter for every configured condition key.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert processed samples for all configured conditions.",
	Long: `convert loads the processed sample table for every configured
condition key, converts it into the ARCADE .CELLS.json, .LOCATIONS.json,
and setup .xml formats, and writes the results back to the working
location.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := convertConfig(Cfg)
		if err != nil {
			return err
		}
		return Convert(context.Background(), cfg)
	},
	DisableAutoGenTag: true,
}
