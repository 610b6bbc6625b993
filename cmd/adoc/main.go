// Copyright 2024 The go-adoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command adoc converts a single AsciiDoc file into an HTML fragment,
// writing the result to stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/codegod100/adoc"
)

func main() {
	logger := log.New(os.Stderr, "", 0)
	if err := run(os.Args, os.Stdout); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

// run implements the CLI's three-outcome contract (wrong argument count,
// file read failure, parse failure) against explicit args and an output
// writer, keeping main itself a thin shim around it.
func run(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <input.adoc>", filepath.Base(prog(args)))
	}

	source, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[1], err)
	}

	doc, err := adoc.ParseDocument(source)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, doc.HTML())
	return err
}

func prog(args []string) string {
	if len(args) == 0 {
		return "adoc"
	}
	return args[0]
}
