// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/vecexec/pkg/common/moerr"
	"github.com/matrixorigin/vecexec/pkg/logutil"
)

const (
	defaultBatchRows       = 1024
	defaultBytesBufferSize = 16 * 1024
)

// Config holds the tunables of the execution core.
type Config struct {
	// BatchRows is the row capacity of newly built batches.
	BatchRows int `toml:"batchRows"`

	// BytesBufferSize is the initial byte capacity of bytes vectors'
	// shared value buffers.
	BytesBufferSize int `toml:"bytesBufferSize"`

	// Parallelism caps how many independent batches are evaluated
	// concurrently. Zero means GOMAXPROCS.
	Parallelism int `toml:"parallelism"`

	Log logutil.LogConfig `toml:"log"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		BatchRows:       defaultBatchRows,
		BytesBufferSize: defaultBytesBufferSize,
		Parallelism:     runtime.GOMAXPROCS(0),
	}
}

// LoadConfigFromFile decodes a toml file over the defaults and installs the
// log configuration.
func LoadConfigFromFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, moerr.NewInvalidInput("config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logutil.SetupLogger(&cfg.Log); err != nil {
		return nil, moerr.NewInvalidInput("config file %s: %v", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.BatchRows <= 0 {
		return moerr.NewInvalidArg("batchRows", cfg.BatchRows)
	}
	if cfg.BytesBufferSize < 0 {
		return moerr.NewInvalidArg("bytesBufferSize", cfg.BytesBufferSize)
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	return nil
}
