// SPDX-License-Identifier: MIT

// Command dastr builds type DA structures and checks their structure equation.
//
//	dastr identity --genus 2 --mult-one
//	dastr build slide.yaml --mult 1,1,0
//	dastr check slide.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
