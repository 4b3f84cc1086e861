// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core holds the runtime configuration and logging setup shared by
// koruinfo commands.
package core
