// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
	}
	os.Exit(exitCode(err))
}
