/*
ucdinfo prints the Unicode character data for a single codepoint.

The codepoint argument is either the character itself or a hexadecimal
codepoint, optionally prefixed with "U+" or "0x":

   ucdinfo ह
   ucdinfo U+0939
   ucdinfo 0x0939
   ucdinfo 0939

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ucd"
	"github.com/spf13/cobra"
)

var forceDownload bool

var rootCmd = &cobra.Command{
	Use:          "ucdinfo [flags] char",
	Short:        "Get Unicode character data",
	Long:         "ucdinfo prints the Unicode character data for a single codepoint,\ngiven as a character or a hex codepoint (U+0939, 0x0939, 0939).",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	rootCmd.Flags().BoolVar(&forceDownload, "force-download", false,
		"force download of latest Unicode data")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if forceDownload {
		if err := ucd.ForceDownload(); err != nil {
			return err
		}
	}
	codepoint, err := parseCodepointArg(args[0])
	if err != nil {
		return err
	}
	props, err := ucd.Lookup(codepoint)
	if err != nil {
		return err
	}

	fmt.Printf("\nCharacter data for '%c' (U+%04X, %d)\n\n", codepoint, codepoint, codepoint)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-40s %s\n", strings.ReplaceAll(name, "_", " "), props[name])
	}
	return nil
}

// parseCodepointArg interprets a command line argument as a codepoint: a
// single character stands for itself, anything longer is read as hex with an
// optional U+/0x prefix.
func parseCodepointArg(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	}
	hex := arg
	if len(arg) > 2 {
		switch arg[:2] {
		case "U+", "u+", "0x", "0X":
			hex = arg[2:]
		}
	}
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("could not understand codepoint %s", arg)
	}
	return rune(n), nil
}
