/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// DefaultPageSize is the batch size used when a caller asks for zero or fewer entries.
const DefaultPageSize = 10

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	// Default applies when the requested size is zero or negative.
	Default int
	// Max caps the requested size. Zero means no cap.
	Max int
}

// DefaultPageSizeConfig returns the page size configuration used when none is given.
func DefaultPageSizeConfig() PageSizeConfig {
	return PageSizeConfig{Default: DefaultPageSize}
}

// Clamp applies defaults and limits to a requested page size. The result is always at least 1.
func (c PageSizeConfig) Clamp(requested int) int {
	size := requested
	if size <= 0 {
		size = c.Default
	}
	if c.Max > 0 && size > c.Max {
		size = c.Max
	}
	if size <= 0 {
		size = 1
	}
	return size
}
