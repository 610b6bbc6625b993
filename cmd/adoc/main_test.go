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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWrongArgumentCount(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"adoc"}, &out)
	require.Error(t, err, "missing the input-path argument")
	assert.Contains(t, err.Error(), "usage")
}

func TestRunFileReadFailure(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"adoc", filepath.Join(t.TempDir(), "does-not-exist.adoc")}, &out)
	assert.Error(t, err, "nonexistent input file")
}

func TestRunParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.adoc")
	require.NoError(t, os.WriteFile(path, []byte("----\nno closer\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"adoc", path}, &out)
	assert.Error(t, err, "unterminated delimited block")
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.adoc")
	require.NoError(t, os.WriteFile(path, []byte("= Title\n\nHello world!\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"adoc", path}, &out)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>\n<p>Hello world!</p>\n\n", out.String())
}
