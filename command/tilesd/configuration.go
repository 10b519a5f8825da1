// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/chain"
	"github.com/bitmark-inc/tilesd/configuration"
	"github.com/bitmark-inc/tilesd/constants"
	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/pricing"
	"github.com/bitmark-inc/tilesd/publish"
	"github.com/bitmark-inc/tilesd/rpc/listeners"
	"github.com/bitmark-inc/tilesd/tile"
	"github.com/bitmark-inc/tilesd/util"
	"github.com/bitmark-inc/tilesd/validation"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "tilesd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	pemPrefix = "-----BEGIN"
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the leveldb lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// PriceScalingType - initial price tiers
type PriceScalingType struct {
	Hour1         uint64 `gluamapper:"hour_1" json:"hour_1"`
	Hour12        uint64 `gluamapper:"hour_12" json:"hour_12"`
	Hour24        uint64 `gluamapper:"hour_24" json:"hour_24"`
	QuadraticBase uint64 `gluamapper:"quadratic_base" json:"quadratic_base"`
}

// TilesType - engine settings
type TilesType struct {
	RoyaltyAddress string           `gluamapper:"royalty_address" json:"royalty_address"`
	RoyaltyPercent uint64           `gluamapper:"royalty_percent" json:"royalty_percent"`
	Minter         string           `gluamapper:"minter" json:"minter"`
	Denomination   string           `gluamapper:"denomination" json:"denomination"`
	MaximumBatch   int              `gluamapper:"maximum_batch" json:"maximum_batch"`
	MinimumLease   uint64           `gluamapper:"minimum_lease" json:"minimum_lease"`
	MaximumLease   uint64           `gluamapper:"maximum_lease" json:"maximum_lease"`
	PriceScaling   PriceScalingType `gluamapper:"price_scaling" json:"price_scaling"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	ReadOnly      bool         `gluamapper:"read_only" json:"read_only"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Tiles      TilesType                    `gluamapper:"tiles" json:"tiles"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	scaling := pricing.Default()
	limits := validation.DefaultLimits()

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Tiles,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // default from chain
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share certificate with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Tiles: TilesType{
			RoyaltyPercent: constants.DefaultRoyaltyPercent,
			Denomination:   constants.DefaultDenomination,
			MaximumBatch:   limits.MaximumBatch,
			MinimumLease:   limits.MinimumLease,
			MaximumLease:   limits.MaximumLease,
			PriceScaling: PriceScalingType{
				Hour1:         scaling.Hour1Price,
				Hour12:        scaling.Hour12Price,
				Hour24:        scaling.Hour24Price,
				QuadraticBase: scaling.QuadraticBase,
			},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// storage appends its own extension
	if "" == options.Database.Name {
		options.Database.Name = options.Chain
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// certificates may be given inline as PEM text or as file names
	if err := loadPEM(options.DataDirectory, &options.ClientRPC.Certificate, &options.ClientRPC.PrivateKey); nil != err {
		return nil, err
	}
	if 0 != len(options.HttpsRPC.Listen) {
		if err := loadPEM(options.DataDirectory, &options.HttpsRPC.Certificate, &options.HttpsRPC.PrivateKey); nil != err {
			return nil, err
		}
	}

	// these must be plain file names, the directory is added below
	for _, name := range []string{options.Database.Name, options.Logging.File} {
		if "." != filepath.Dir(name) {
			return nil, fmt.Errorf("files: %q is not plain name", name)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		if *d, err = util.EnsureDirectory(options.DataDirectory, *d); nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}

// replace each file name by the PEM text it holds
func loadPEM(directory string, items ...*string) error {
	for _, item := range items {
		if "" == *item || strings.HasPrefix(strings.TrimSpace(*item), pemPrefix) {
			continue
		}
		fileName := util.EnsureAbsolute(directory, *item)
		if !util.EnsureFileExists(fileName) {
			return fault.ErrCertificateFileNotFound
		}
		data, err := ioutil.ReadFile(fileName)
		if nil != err {
			return err
		}
		*item = string(data)
	}
	return nil
}

// engine settings from the tiles section
func (c *Configuration) engineConfiguration() tile.Configuration {
	t := c.Tiles
	return tile.Configuration{
		RoyaltyAddress: t.RoyaltyAddress,
		RoyaltyPercent: t.RoyaltyPercent,
		Minter:         t.Minter,
		Denomination:   t.Denomination,
		Limits: validation.Limits{
			MaximumBatch: t.MaximumBatch,
			MinimumLease: t.MinimumLease,
			MaximumLease: t.MaximumLease,
		},
		InitialScaling: pricing.Scaling{
			Hour1Price:    t.PriceScaling.Hour1,
			Hour12Price:   t.PriceScaling.Hour12,
			Hour24Price:   t.PriceScaling.Hour24,
			QuadraticBase: t.PriceScaling.QuadraticBase,
		},
	}
}
