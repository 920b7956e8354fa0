/*
 * MIT License
 *
 * Copyright (c) 2026 Mathieu Juhel
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package config implements SPEC_FULL.md §1.3: process environment defaults
// bound through viper and read once at startup, before cobra registers its
// flags. A flag's own default is only used when the corresponding env var
// is unset, so the precedence stays flag > env > built-in default.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/mjuhel/blockzip/internal/codec"
)

const envPrefix = "blockzip"

// Keys for the three env-bindable settings, also usable as viper lookup keys.
const (
	KeyLevel    = "level"
	KeyForce    = "force"
	KeyProgress = "progress"
)

// Defaults holds the env-resolved values cobra uses as its flag defaults.
type Defaults struct {
	Level    codec.Level
	Force    bool
	Progress bool
}

// Load reads BLOCKZIP_LEVEL, BLOCKZIP_FORCE and BLOCKZIP_PROGRESS from the
// process environment and returns the resolved Defaults. A variable that is
// absent or unparseable falls back to the built-in default (balanced,
// false, false).
func Load() Defaults {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLevel, codec.Balanced.String())
	v.SetDefault(KeyForce, false)
	v.SetDefault(KeyProgress, false)

	return Defaults{
		Level:    codec.ParseLevel(v.GetString(KeyLevel)),
		Force:    v.GetBool(KeyForce),
		Progress: v.GetBool(KeyProgress),
	}
}
