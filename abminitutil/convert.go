/*
Copyright © 2023 the abminit authors.
This file is part of abminit.

abminit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

abminit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with abminit.  If not, see <http://www.gnu.org/licenses/>.
*/

package abminitutil

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cellmodel/abminit"
	"github.com/cellmodel/abminit/cloud"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gocloud.dev/blob"
)

// A Config holds the conversion settings for one run.
type Config struct {
	WorkingLocation       string
	Name                  string
	Keys                  []string
	Regions               []string
	Margins               [3]int
	ReferenceLocation     string
	ReferenceKey          string
	TransformReferenceKey string
	Resolution            float64
	PottsTerms            []string
}

// convertConfig extracts and checks the conversion settings in cfg.
func convertConfig(cfg *viper.Viper) (*Config, error) {
	c := &Config{
		WorkingLocation:       cfg.GetString("WorkingLocation"),
		Name:                  cfg.GetString("Name"),
		Keys:                  cfg.GetStringSlice("Keys"),
		Regions:               cfg.GetStringSlice("Regions"),
		ReferenceLocation:     cfg.GetString("ReferenceLocation"),
		ReferenceKey:          cfg.GetString("ReferenceKey"),
		TransformReferenceKey: cfg.GetString("TransformReferenceKey"),
		Resolution:            cfg.GetFloat64("Resolution"),
		PottsTerms:            cfg.GetStringSlice("PottsTerms"),
	}
	if c.Name == "" {
		return nil, fmt.Errorf("abminit: the Name configuration variable must be set")
	}
	if len(c.Keys) == 0 {
		return nil, fmt.Errorf("abminit: the Keys configuration variable must list at least one condition")
	}
	margins, err := cast.ToIntSliceE(cfg.Get("Margins"))
	if err != nil {
		return nil, fmt.Errorf("abminit: invalid Margins configuration: %v", err)
	}
	if len(margins) != 3 {
		return nil, fmt.Errorf("abminit: Margins must have 3 elements but has %d", len(margins))
	}
	copy(c.Margins[:], margins)
	return c, nil
}

// Convert runs the converter for every condition key in the
// configuration. Each condition is one atomic unit: its three output
// files are written only after the whole conversion succeeded.
func Convert(ctx context.Context, cfg *Config) error {
	bucket, err := cloud.OpenBucket(ctx, cfg.WorkingLocation)
	if err != nil {
		return err
	}

	params := abminit.DefaultParams()
	params.Resolution = cfg.Resolution
	params.ScaleResolution()
	if len(cfg.PottsTerms) > 0 {
		params.PottsTerms = cfg.PottsTerms
	}
	converter := abminit.NewConverter(params)

	reference, err := loadReference(ctx, cfg)
	if err != nil {
		return err
	}
	transformReference, err := loadTransformReference(ctx, bucket, cfg)
	if err != nil {
		return err
	}

	for _, key := range cfg.Keys {
		if err := convertKey(ctx, bucket, converter, cfg, reference, transformReference, key); err != nil {
			return err
		}
	}
	return nil
}

// convertKey converts one condition.
func convertKey(ctx context.Context, bucket *blob.Bucket, converter *abminit.Converter,
	cfg *Config, reference *abminit.ReferenceTable, transformReference *abminit.SampleTable, key string) error {

	log := logrus.WithFields(logrus.Fields{"name": cfg.Name, "key": key})

	samples, err := loadSamples(ctx, bucket, SamplesKey(cfg.Name, key, ""))
	if err != nil {
		return err
	}
	regions := make([]abminit.RegionSamples, len(cfg.Regions))
	for i, region := range cfg.Regions {
		table, err := loadSamples(ctx, bucket, SamplesKey(cfg.Name, key, region))
		if err != nil {
			return err
		}
		regions[i] = abminit.RegionSamples{Region: region, Table: table}
	}

	result, err := converter.Convert(&abminit.Condition{
		Key:                key,
		Samples:            samples,
		Regions:            regions,
		Margins:            cfg.Margins,
		TransformReference: transformReference,
		Reference:          reference,
	})
	if err != nil {
		return err
	}
	if n := len(result.Excluded); n > 0 {
		log.WithField("ids", result.Excluded).Warnf("excluded %d cells with incomplete region coverage", n)
	}

	var cells, locations bytes.Buffer
	if err := abminit.WriteCells(&cells, result.Cells); err != nil {
		return err
	}
	if err := abminit.WriteLocations(&locations, result.Locations); err != nil {
		return err
	}

	if err := writeAll(ctx, bucket, InitsKey(cfg.Name, key, cfg.Margins, "CELLS.json"), cells.Bytes()); err != nil {
		return err
	}
	if err := writeAll(ctx, bucket, InitsKey(cfg.Name, key, cfg.Margins, "LOCATIONS.json"), locations.Bytes()); err != nil {
		return err
	}
	if err := writeAll(ctx, bucket, InitsKey(cfg.Name, key, cfg.Margins, "xml"), result.Setup); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"cells":  len(result.Cells),
		"bounds": result.Bounds,
	}).Info("converted condition")
	return nil
}

// loadSamples reads and parses one sample table.
func loadSamples(ctx context.Context, bucket *blob.Bucket, key string) (*abminit.SampleTable, error) {
	b, err := readAll(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	return abminit.ReadSamples(bytes.NewReader(b))
}

// loadReference reads the per-cell reference table if one is configured,
// rescaling its physical values onto the grid.
func loadReference(ctx context.Context, cfg *Config) (*abminit.ReferenceTable, error) {
	if cfg.ReferenceLocation == "" || cfg.ReferenceKey == "" {
		return nil, nil
	}
	bucket, err := cloud.OpenBucket(ctx, cfg.ReferenceLocation)
	if err != nil {
		return nil, err
	}
	b, err := readAll(ctx, bucket, cfg.ReferenceKey)
	if err != nil {
		return nil, err
	}
	reference, err := abminit.ReadReference(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	reference.ScaleResolution(cfg.Resolution)
	return reference, nil
}

// loadTransformReference reads the optional coordinate table that fixes
// the grid transform across conditions.
func loadTransformReference(ctx context.Context, bucket *blob.Bucket, cfg *Config) (*abminit.SampleTable, error) {
	if cfg.TransformReferenceKey == "" {
		return nil, nil
	}
	return loadSamples(ctx, bucket, cfg.TransformReferenceKey)
}
