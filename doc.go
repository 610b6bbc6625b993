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

// Package adoc parses a subset of the AsciiDoc markup language into a
// document tree and renders that tree to HTML.
//
// Parsing happens in three stages: a line-oriented block grammar splits the
// input into a flat sequence of blocks (see [ParseDocument]), an inline
// scanner resolves formatting markers and macros within paragraph and list
// item text, and a reconciliation pass threads standalone attribute lines
// into the delimited block that follows them. The resulting [Document] is
// rendered to HTML with [Document.HTML].
package adoc
