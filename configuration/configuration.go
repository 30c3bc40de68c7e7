// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/watermark/aggregate"
	"github.com/bitmark-inc/watermark/carrier"
	"github.com/bitmark-inc/watermark/fault"
	"github.com/bitmark-inc/watermark/separator"
	"github.com/bitmark-inc/watermark/textmark"
	"github.com/bitmark-inc/watermark/watermarkrecord"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultPlacement     = "spaces"
	defaultFormat        = "raw"

	defaultLogDirectory = "log"
	defaultLogFile      = "watermark.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}

	logLevels = map[string]struct{}{
		"trace":    {},
		"debug":    {},
		"info":     {},
		"warn":     {},
		"error":    {},
		"critical": {},
		"off":      {},
	}
)

// decoding merges into the map so each configuration needs its own
func (m LoglevelMap) copy() map[string]string {
	levels := make(map[string]string, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// SeparatorType - separator strategy name and its characters as code points
type SeparatorType struct {
	Strategy   string `gluamapper:"strategy" json:"strategy"`
	Characters []int  `gluamapper:"characters" json:"characters"`
}

// Configuration - engine and logging settings
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Alphabet        []int                `gluamapper:"alphabet" json:"alphabet"`
	Separator       SeparatorType        `gluamapper:"separator" json:"separator"`
	Placement       string               `gluamapper:"placement" json:"placement"`
	Format          string               `gluamapper:"format" json:"format"`
	Squash          bool                 `gluamapper:"squash" json:"squash"`
	SingleWatermark bool                 `gluamapper:"single_watermark" json:"single_watermark"`
	StrictEncoding  bool                 `gluamapper:"strict_encoding" json:"strict_encoding"`
	Normalise       bool                 `gluamapper:"normalise" json:"normalise"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`

	alphabet  []rune
	separator separator.Strategy
	placement textmark.Placement
	tag       watermarkrecord.TagType
}

// Get - will read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Placement:     defaultPlacement,
		Format:        defaultFormat,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.resolve(); nil != err {
		return nil, err
	}

	for _, level := range options.Logging.Levels {
		if _, ok := logLevels[strings.ToLower(level)]; !ok {
			return nil, fault.ErrInvalidLogLevel
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidPath
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidPath
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrNotFileName
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// convert the configured names and code points, then check an engine
// can be built from them
func (c *Configuration) resolve() error {
	alphabet, err := codePoints(c.Alphabet)
	if nil != err {
		return err
	}
	if 0 == len(alphabet) {
		alphabet = nil
	}
	c.alphabet = alphabet

	kind, err := separator.ParseKind(c.Separator.Strategy)
	if nil != err {
		return err
	}
	characters, err := codePoints(c.Separator.Characters)
	if nil != err {
		return err
	}
	c.separator, err = separator.New(kind, characters)
	if nil != err {
		return err
	}

	c.placement, err = textmark.PlacementByName(strings.ToLower(c.Placement))
	if nil != err {
		return err
	}

	c.tag, err = watermarkrecord.ParseTagName(c.Format)
	if nil != err {
		return err
	}

	_, err = textmark.New(c.EngineOptions()...)
	return err
}

func codePoints(values []int) ([]rune, error) {
	runes := make([]rune, len(values))
	for i, v := range values {
		r := rune(v)
		if v <= 0 || int(r) != v || !utf8.ValidRune(r) {
			return nil, fault.ErrInvalidCodePoint
		}
		runes[i] = r
	}
	return runes, nil
}

// EngineOptions - the engine settings, append textmark.WithLogger to log
func (c *Configuration) EngineOptions() []textmark.Option {
	options := []textmark.Option{
		textmark.WithSeparator(c.separator),
		textmark.WithPlacement(c.placement),
	}
	if nil != c.alphabet {
		options = append(options, textmark.WithAlphabet(c.alphabet))
	}
	return options
}

// Aggregation - how extracted watermarks are combined
func (c *Configuration) Aggregation() aggregate.Options {
	return aggregate.Options{
		Squash:          c.Squash,
		SingleWatermark: c.SingleWatermark,
	}
}

// Tag - the record variant used for new watermarks
func (c *Configuration) Tag() watermarkrecord.TagType {
	return c.tag
}

// Carrier - wrap UTF-8 data using the configured decoding rules
func (c *Configuration) Carrier(data []byte) *carrier.Bytes {
	b := carrier.NewBytes(data, c.StrictEncoding)
	if c.Normalise {
		b.Normalise()
	}
	return b
}
