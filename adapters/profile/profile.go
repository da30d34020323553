// Package profile loads farm field profiles from HCL or JSON files and
// converts them into the base-input map the report pipeline consumes.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Profile is the root of a field profile file
type Profile struct {
	Field Field `hcl:"field,block"`
}

// Field describes one field: crop, geometry-free sizing, and soil state
type Field struct {
	Name       string  `hcl:"name,label"`
	Crop       string  `hcl:"crop,optional"`
	SowingDate string  `hcl:"sowing_date,optional"`
	FieldSize  float64 `hcl:"field_size,optional"`
	FieldUnit  string  `hcl:"field_unit,optional"`
	Region     string  `hcl:"region,optional"`
	Soil       *Soil   `hcl:"soil,block"`
}

// Soil holds the measured soil attributes
type Soil struct {
	PH            *float64 `hcl:"ph,optional"`
	MoisturePct   *float64 `hcl:"moisture_pct,optional"`
	NitrogenPpm   *float64 `hcl:"nitrogen_ppm,optional"`
	PhosphorusPpm *float64 `hcl:"phosphorus_ppm,optional"`
	PotassiumPpm  *float64 `hcl:"potassium_ppm,optional"`
	OrganicPct    *float64 `hcl:"organic_matter_pct,optional"`
}

// Load reads a profile from an .hcl or .json file
func Load(path string) (*Profile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return loadHCL(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported profile format: %s", path)
	}
}

func loadHCL(path string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}

	var p Profile
	if diags := gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", path, diags.Error())
	}
	return &p, nil
}

func loadJSON(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &p, nil
}

// BaseInputs flattens the profile into the input map the pipeline
// reads. Field sizing defaults to hectares; unset soil attributes are
// omitted rather than zeroed.
func (f Field) BaseInputs() map[string]any {
	unit := f.FieldUnit
	if unit == "" {
		unit = "hectares"
	}

	inputs := map[string]any{
		"Field_Name": f.Name,
		"Field_Size": f.FieldSize,
		"Field_Unit": unit,
	}
	if f.Crop != "" {
		inputs["Crop"] = f.Crop
	}
	if f.SowingDate != "" {
		inputs["Sowing_Date"] = f.SowingDate
	}
	if f.Region != "" {
		inputs["Region"] = f.Region
	}
	if f.Soil != nil {
		setIf(inputs, "Soil_pH", f.Soil.PH)
		setIf(inputs, "Moisture_Pct", f.Soil.MoisturePct)
		setIf(inputs, "Nitrogen_ppm", f.Soil.NitrogenPpm)
		setIf(inputs, "Phosphorus_ppm", f.Soil.PhosphorusPpm)
		setIf(inputs, "Potassium_ppm", f.Soil.PotassiumPpm)
		setIf(inputs, "Organic_Matter_Pct", f.Soil.OrganicPct)
	}
	return inputs
}

func setIf(inputs map[string]any, key string, value *float64) {
	if value != nil {
		inputs[key] = *value
	}
}
