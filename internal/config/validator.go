package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "generator.cycle_length")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateEncoder()...)
	errors = append(errors, c.validateGenerator()...)
	errors = append(errors, c.validateReport()...)

	return errors
}

func (c *Config) validateEncoder() []ValidationError {
	var errors []ValidationError

	if eps := c.Encoder.Epsilon; !(eps > 0) || math.IsInf(eps, 0) {
		errors = append(errors, ValidationError{
			Field:   "encoder.epsilon",
			Value:   eps,
			Message: "must be a positive finite number",
		})
	}

	return errors
}

func (c *Config) validateGenerator() []ValidationError {
	var errors []ValidationError
	g := c.Generator

	if g.Cycles < 1 {
		errors = append(errors, ValidationError{
			Field:   "generator.cycles",
			Value:   g.Cycles,
			Message: "must be at least 1",
		})
	}
	if g.CycleLength < 3 {
		errors = append(errors, ValidationError{
			Field:   "generator.cycle_length",
			Value:   g.CycleLength,
			Message: "must be at least 3",
		})
	}
	if g.NoiseEdges < 0 {
		errors = append(errors, ValidationError{
			Field:   "generator.noise_edges",
			Value:   g.NoiseEdges,
			Message: "must be non-negative",
		})
	}
	if !(g.NoiseFraction >= 0 && g.NoiseFraction <= 1) {
		errors = append(errors, ValidationError{
			Field:   "generator.noise_fraction",
			Value:   g.NoiseFraction,
			Message: "must be between 0 and 1",
		})
	}
	if g.NoiseEdges > 0 && g.NoiseFraction > 0 {
		errors = append(errors, ValidationError{
			Field:   "generator.noise_fraction",
			Value:   g.NoiseFraction,
			Message: "cannot be combined with generator.noise_edges",
		})
	}

	return errors
}

func (c *Config) validateReport() []ValidationError {
	var errors []ValidationError
	r := c.Report

	if !(r.Confidence > 0 && r.Confidence < 1) {
		errors = append(errors, ValidationError{
			Field:   "report.confidence",
			Value:   r.Confidence,
			Message: "must be strictly between 0 and 1",
		})
	}
	if !(r.EnergyTolerance >= 0) || math.IsInf(r.EnergyTolerance, 0) {
		errors = append(errors, ValidationError{
			Field:   "report.energy_tolerance",
			Value:   r.EnergyTolerance,
			Message: "must be a non-negative finite number",
		})
	}
	if r.NumReads < 1 {
		errors = append(errors, ValidationError{
			Field:   "report.num_reads",
			Value:   r.NumReads,
			Message: "must be at least 1",
		})
	}

	return errors
}
