// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package models

import "time"

// TimeSeriesPoint is one telemetry sample of a turbine.
//
// Power defaults to 0 when the source has no value. WindSpeed is nil when the
// source has no value; such points never fall into a wind-speed bin.
type TimeSeriesPoint struct {
	Timestamp time.Time       `json:"timestamp" bson:"timestamp"`
	Power     float64         `json:"power" bson:"power"`
	WindSpeed *float64        `json:"wind_speed" bson:"wind_speed"`
	Metadata  TurbineMetadata `json:"metadata" bson:"metadata"`
}

// TurbineMetadata is the time-series meta field. Everything except
// TurbineID is optional and omitted from storage when unknown.
type TurbineMetadata struct {
	TurbineID           string   `json:"turbine_id" bson:"turbine_id"`
	RPM                 *float64 `json:"rpm,omitempty" bson:"rpm,omitempty"`
	Azimuth             *float64 `json:"azimuth,omitempty" bson:"azimuth,omitempty"`
	ExternalTemperature *float64 `json:"external_temperature,omitempty" bson:"external_temperature,omitempty"`
	InternalTemperature *float64 `json:"internal_temperature,omitempty" bson:"internal_temperature,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Altitude            *float64 `json:"altitude,omitempty" bson:"altitude,omitempty"`
}

// AggregatedBucket holds the per-bin means of one wind-speed bin, rounded to
// two decimals. A mean is nil when no point in the bin carries that field.
type AggregatedBucket struct {
	WindSpeedBin               float64  `json:"wind_speed_bin" bson:"_id"`
	Count                      int      `json:"count" bson:"count"`
	AveragePower               *float64 `json:"average_power" bson:"average_power"`
	AverageWindSpeed           *float64 `json:"average_wind_speed" bson:"average_wind_speed"`
	AverageAzimuth             *float64 `json:"average_azimuth" bson:"average_azimuth"`
	AverageExternalTemperature *float64 `json:"average_external_temperature" bson:"average_external_temperature"`
	AverageInternalTemperature *float64 `json:"average_internal_temperature" bson:"average_internal_temperature"`
	AverageRPM                 *float64 `json:"average_rpm" bson:"average_rpm"`
}
