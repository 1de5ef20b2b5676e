// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/gustline/internal/models"
)

// Wind speed binning parameters for the power curve.
const (
	BinWidth     = 0.5
	MaxWindSpeed = 25.0

	// outOfRangeBucket collects wind speeds outside [0, MaxWindSpeed+BinWidth)
	// along with missing values. It is dropped from results.
	outOfRangeBucket = "out of range"
)

// DefaultWindowStart and DefaultWindowEnd bound the power curve when the
// caller supplies neither bound.
var (
	DefaultWindowStart = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultWindowEnd   = DefaultWindowStart.Add(24 * time.Hour)
)

// defaultWindowSpan is used to derive a missing bound from the given one.
const defaultWindowSpan = 24 * time.Hour

// PowerCurveQuery selects the telemetry to bin.
type PowerCurveQuery struct {
	Start     *time.Time
	End       *time.Time
	TurbineID string
}

// PointQuery selects raw telemetry rows.
type PointQuery struct {
	Start     *time.Time
	End       *time.Time
	TurbineID string
	Limit     int
}

// BinBoundaries returns the lower edges of every wind speed bin followed by
// the closing edge: 0, 0.5, ..., 25.0, 25.5.
func BinBoundaries() []float64 {
	n := int(MaxWindSpeed/BinWidth) + 2
	bounds := make([]float64, n)
	for i := range bounds {
		bounds[i] = float64(i) * BinWidth
	}
	return bounds
}

// ResolveWindow fills in missing bounds and validates start < end.
//
// With neither bound the default reference day is used. With one bound the
// other is placed one day away from it.
func ResolveWindow(start, end *time.Time) (time.Time, time.Time, error) {
	var from, to time.Time
	switch {
	case start == nil && end == nil:
		from, to = DefaultWindowStart, DefaultWindowEnd
	case start == nil:
		to = end.UTC()
		from = to.Add(-defaultWindowSpan)
	case end == nil:
		from = start.UTC()
		to = from.Add(defaultWindowSpan)
	default:
		from, to = start.UTC(), end.UTC()
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}

func telemetryMatch(from, to time.Time, turbineID string) bson.D {
	match := bson.D{{Key: "timestamp", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}}
	if turbineID != "" {
		match = append(match, bson.E{Key: "metadata.turbine_id", Value: turbineID})
	}
	return match
}

func round2(field string) bson.D {
	return bson.D{{Key: "$round", Value: bson.A{field, 2}}}
}

// powerCurvePipeline buckets telemetry in [from, to) by wind speed. Each
// bucket is keyed by its lower edge, so a value on an edge belongs to the
// bin starting there.
func powerCurvePipeline(from, to time.Time, turbineID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: telemetryMatch(from, to, turbineID)}},
		{{Key: "$bucket", Value: bson.D{
			{Key: "groupBy", Value: "$wind_speed"},
			{Key: "boundaries", Value: BinBoundaries()},
			{Key: "default", Value: outOfRangeBucket},
			{Key: "output", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "average_power", Value: bson.D{{Key: "$avg", Value: "$power"}}},
				{Key: "average_wind_speed", Value: bson.D{{Key: "$avg", Value: "$wind_speed"}}},
				{Key: "average_azimuth", Value: bson.D{{Key: "$avg", Value: "$metadata.azimuth"}}},
				{Key: "average_external_temperature", Value: bson.D{{Key: "$avg", Value: "$metadata.external_temperature"}}},
				{Key: "average_internal_temperature", Value: bson.D{{Key: "$avg", Value: "$metadata.internal_temperature"}}},
				{Key: "average_rpm", Value: bson.D{{Key: "$avg", Value: "$metadata.rpm"}}},
			}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: outOfRangeBucket}}}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "count", Value: 1},
			{Key: "average_power", Value: round2("$average_power")},
			{Key: "average_wind_speed", Value: round2("$average_wind_speed")},
			{Key: "average_azimuth", Value: round2("$average_azimuth")},
			{Key: "average_external_temperature", Value: round2("$average_external_temperature")},
			{Key: "average_internal_temperature", Value: round2("$average_internal_temperature")},
			{Key: "average_rpm", Value: round2("$average_rpm")},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// PowerCurve returns per-bin averages in ascending bin order. An empty slice
// means no telemetry matched.
func (db *DB) PowerCurve(ctx context.Context, q PowerCurveQuery) (buckets []models.AggregatedBucket, err error) {
	from, to, err := ResolveWindow(q.Start, q.End)
	if err != nil {
		return nil, err
	}

	coll := db.collection(db.cfg.TelemetryCollection)
	start := time.Now()
	defer func() { observe("aggregate", coll.Name(), start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	cur, err := coll.Aggregate(ctx, powerCurvePipeline(from, to, q.TurbineID))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate power curve: %w", err)
	}

	buckets = []models.AggregatedBucket{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode power curve: %w", err)
	}
	return buckets, nil
}

// ListTurbineIDs returns the distinct turbine ids present in telemetry, sorted.
func (db *DB) ListTurbineIDs(ctx context.Context) (ids []string, err error) {
	coll := db.collection(db.cfg.TelemetryCollection)
	start := time.Now()
	defer func() { observe("distinct", coll.Name(), start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	res := coll.Distinct(ctx, "metadata.turbine_id", bson.D{})
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to list turbines: %w", err)
	}
	ids = []string{}
	if err := res.Decode(&ids); err != nil {
		return nil, fmt.Errorf("failed to decode turbine ids: %w", err)
	}
	slices.Sort(ids)
	return ids, nil
}

// ListPoints returns raw telemetry in ascending time order. Bounds are
// optional; when both are given they must satisfy start < end.
func (db *DB) ListPoints(ctx context.Context, q PointQuery) (points []models.TimeSeriesPoint, err error) {
	if q.Start != nil && q.End != nil && !q.Start.Before(*q.End) {
		return nil, ErrInvalidRange
	}

	filter := bson.D{}
	window := bson.D{}
	if q.Start != nil {
		window = append(window, bson.E{Key: "$gte", Value: q.Start.UTC()})
	}
	if q.End != nil {
		window = append(window, bson.E{Key: "$lt", Value: q.End.UTC()})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	if q.TurbineID != "" {
		filter = append(filter, bson.E{Key: "metadata.turbine_id", Value: q.TurbineID})
	}

	coll := db.collection(db.cfg.TelemetryCollection)
	start := time.Now()
	defer func() { observe("find", coll.Name(), start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry: %w", err)
	}

	points = []models.TimeSeriesPoint{}
	if err := cur.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode telemetry: %w", err)
	}
	return points, nil
}
