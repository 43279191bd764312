/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command juice builds JavaScript and CSS files from directive-annotated
// sources.
package main

import (
	"os"

	"bennypowers.dev/juice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
