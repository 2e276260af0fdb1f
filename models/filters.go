package models

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DateRange values match the original dashboard's filter ids.
type DateRange string

const (
	RangeLastMonth   DateRange = "ultimo_mes"
	RangeLast3Months DateRange = "ultimos_3_meses"
	RangeLast6Months DateRange = "ultimos_6_meses"
	RangeCurrentYear DateRange = "year"
	RangeAll         DateRange = "all"
)

// VersionFilter selects free vs paid product versions.
type VersionFilter string

const (
	VersionAll      VersionFilter = "todas"
	VersionGratuita VersionFilter = "gratuita"
	VersionAvanzada VersionFilter = "avanzada"
)

// DeviceFilter narrows orders by device type.
type DeviceFilter string

const (
	DeviceAll     DeviceFilter = "todos"
	DeviceDesktop DeviceFilter = "desktop"
	DeviceMobile  DeviceFilter = "mobile"
)

// FilterState is the view configuration supplied with every aggregation
// request. It is decoded from query params each time; the server keeps no
// memory of previous filters.
type FilterState struct {
	DateRange DateRange     `json:"date_range"`
	Countries []string      `json:"countries"`
	Version   VersionFilter `json:"version"`
	Device    DeviceFilter  `json:"device"`
}

// DefaultFilters mirrors the dashboard's initial state.
func DefaultFilters() FilterState {
	return FilterState{
		DateRange: RangeLast3Months,
		Countries: []string{},
		Version:   VersionAll,
		Device:    DeviceAll,
	}
}

// FilterFromQuery decodes a FilterState from request query params, falling
// back to the defaults for anything absent or unrecognized.
func FilterFromQuery(c *gin.Context) FilterState {
	f := DefaultFilters()

	switch DateRange(c.Query("date_range")) {
	case RangeLastMonth:
		f.DateRange = RangeLastMonth
	case RangeLast3Months:
		f.DateRange = RangeLast3Months
	case RangeLast6Months:
		f.DateRange = RangeLast6Months
	case RangeCurrentYear:
		f.DateRange = RangeCurrentYear
	case RangeAll:
		f.DateRange = RangeAll
	}

	switch VersionFilter(c.Query("version")) {
	case VersionGratuita:
		f.Version = VersionGratuita
	case VersionAvanzada:
		f.Version = VersionAvanzada
	case VersionAll:
		f.Version = VersionAll
	}

	switch DeviceFilter(strings.ToLower(c.Query("device"))) {
	case DeviceDesktop:
		f.Device = DeviceDesktop
	case DeviceMobile:
		f.Device = DeviceMobile
	case DeviceAll:
		f.Device = DeviceAll
	}

	if raw := c.Query("countries"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Countries = append(f.Countries, p)
			}
		}
	}

	return f
}
