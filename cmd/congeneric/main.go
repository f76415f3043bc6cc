// SPDX-License-Identifier: MIT
package main

import "github.com/katalvlaran/congeneric/cli"

func main() {
	cli.Execute()
}
