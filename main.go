/*
 * Testspec generates the QA test specification of one screen of a business web application.
 * Run without arguments to get comprehensive help.
 */

package main

import (
	"os"

	"github.com/daedaleanai/testspec/cmd"
)

func main() {
	if err := cmd.RunRootCommand(); err != nil {
		os.Exit(1)
	}
}
