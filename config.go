// config.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements EngineConfig: ambient configuration
// for the outer CLI and HTTP surfaces, loaded from the environment
// and optionally seeded from a .env file.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package equicore

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EngineConfig holds the environment-derived settings shared by
// cmd/equisim and cmd/equiserve.
type EngineConfig struct {
	LexiconPath string
	LeavesPath  string
	Port        string
	AccessKey   string
}

// LoadEngineConfig reads a .env file if one is present (a missing
// file is not an error, matching godotenv's own convention), then
// populates an EngineConfig from the environment. LEXICON_PATH is
// the only variable without a usable default and its absence is
// reported as an error.
func LoadEngineConfig() (*EngineConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("equicore: loading .env: %w", err)
	}

	lexiconPath := os.Getenv("LEXICON_PATH")
	if lexiconPath == "" {
		return nil, fmt.Errorf("equicore: LEXICON_PATH must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &EngineConfig{
		LexiconPath: lexiconPath,
		LeavesPath:  os.Getenv("LEAVES_PATH"),
		Port:        port,
		AccessKey:   os.Getenv("ACCESS_KEY"),
	}, nil
}
