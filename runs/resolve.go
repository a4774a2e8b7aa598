package runs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/geometry"
	"github.com/vbiancacci/legend-pygeom-hades/measurement"
)

// Request selects a run either directly by its numeric id, or by the
// requested source position. Exactly one of the two is set.
type Request struct {
	Run      string
	Position *SourcePosition
}

// Resolution is a resolved source placement. Define is the position used
// for the registry placement; Mac is the simulation-beam position written
// to the run macro, which differs by the measurement-type axis flips and
// the per-source corrections.
type Resolution struct {
	RunID    string         `json:"runId"`
	ShortID  string         `json:"shortId"`
	Position SourcePosition `json:"position"`
	Define   geometry.Point `json:"define"`
	Mac      geometry.Point `json:"mac"`
}

// Resolve looks up the source placement of a run for the given
// detector/campaign/measurement, or reverse-resolves the run from a
// requested position. Position matching is exact on every level, phi then
// r then z; there is deliberately no numeric tolerance, the table and the
// request must agree bit-for-bit.
func Resolve(
	db *DB, detector, campaign string, spec measurement.Spec, req Request,
) (Resolution, error) {
	// The database files keep the raw source name, before the
	// am_collimated rewrite.
	meas := spec.RawSource() + "_" + spec.Holder + "_" + spec.Position + "_" + spec.ID
	rows, err := db.measurement(detector, campaign, meas)
	if err != nil {
		return Resolution{}, err
	}

	var runID string
	var row runRecord
	switch {
	case req.Run != "":
		n, err := strconv.Atoi(req.Run)
		if err != nil {
			return Resolution{}, &errors.Malformed{
				Input:  req.Run,
				Reason: "run ids are numeric strings with leading zeros, eg \"0001\"",
			}
		}
		runID = fmt.Sprintf("run%04d", n)
		var ok bool
		row, ok = rows[runID]
		if !ok {
			return Resolution{}, errors.NewLookup("run", runID, sortedKeys(rows)...)
		}
	case req.Position != nil:
		runID, row, err = matchPosition(rows, *req.Position)
		if err != nil {
			return Resolution{}, err
		}
	default:
		return Resolution{}, &errors.Malformed{
			Input:  meas,
			Reason: "either a run id or a source position is required",
		}
	}

	define, mac := derivePositions(spec, row.SourcePosition)
	return Resolution{
		RunID:    runID,
		ShortID:  runID[:1] + runID[4:],
		Position: row.SourcePosition,
		Define:   define,
		Mac:      mac,
	}, nil
}

// matchPosition reverse-resolves a run from a requested (phi, r, z) by a
// three-level exact-match cascade. Each failing level reports the values
// available at that level.
func matchPosition(rows measurementRuns, want SourcePosition) (string, runRecord, error) {
	phiMatches := measurementRuns{}
	phiSeen := map[float64]bool{}
	for id, rec := range rows {
		phiSeen[rec.SourcePosition.PhiInDeg] = true
		if rec.SourcePosition.PhiInDeg == want.PhiInDeg {
			phiMatches[id] = rec
		}
	}
	if len(phiMatches) == 0 {
		return "", runRecord{}, errors.NewLookup(
			"phi position", formatMM(want.PhiInDeg), formatAll(phiSeen)...,
		)
	}

	rMatches := measurementRuns{}
	rSeen := map[float64]bool{}
	for id, rec := range phiMatches {
		rSeen[rec.SourcePosition.RInMM] = true
		if rec.SourcePosition.RInMM == want.RInMM {
			rMatches[id] = rec
		}
	}
	if len(rMatches) == 0 {
		return "", runRecord{}, errors.NewLookup(
			"r position", formatMM(want.RInMM), formatAll(rSeen)...,
		)
	}

	zMatches := measurementRuns{}
	zSeen := map[float64]bool{}
	for id, rec := range rMatches {
		zSeen[rec.SourcePosition.ZInMM] = true
		if rec.SourcePosition.ZInMM == want.ZInMM {
			zMatches[id] = rec
		}
	}
	if len(zMatches) == 0 {
		return "", runRecord{}, errors.NewLookup(
			"z position", formatMM(want.ZInMM), formatAll(zSeen)...,
		)
	}
	if len(zMatches) > 1 {
		return "", runRecord{}, fmt.Errorf(
			"position (%g, %g, %g) matches %d runs: %v",
			want.PhiInDeg, want.RInMM, want.ZInMM, len(zMatches), sortedKeys(zMatches),
		)
	}
	for id, rec := range zMatches {
		return id, rec, nil
	}
	panic("unreachable")
}

// derivePositions turns the resolved polar row into the two Cartesian
// placement triples. The numeric corrections are empirical calibration
// constants of the physical fixtures; they are preserved exactly and must
// not be rederived.
func derivePositions(spec measurement.Spec, pos SourcePosition) (define, mac geometry.Point) {
	phi, r, z := pos.PhiInDeg, pos.RInMM, pos.ZInMM

	// The collimated am fixture measures r from a reference 66 mm off the
	// cryostat axis.
	if spec.SourceKey() == "am_HS1" && r != 0 {
		r -= 66
		if r < 0 {
			phi += 180
			r = -r
		}
	}

	x, y := geometry.PolarToCartesian(phi, r)
	define = geometry.Point{X: x, Y: y, Z: z}

	macZ := z
	if spec.Position == "top" {
		macZ = -z
	}
	mac = geometry.Point{X: x, Y: y, Z: macZ}

	switch spec.SourceKey() {
	case "ba_HS4":
		// no correction
	case "th_HS2":
		if spec.Position == "top" {
			mac.Z += -5.0 // (3+.5+1.5) mm
		} else if spec.Position == "lat" {
			if mac.Y == 0 {
				mac.Y = 82.3 // (60.8+18+3+.5) mm
			} else {
				mac.Y += 21.5 // (18+3+.5) mm
			}
		}
	case "am_HS1":
		mac.Z += -26.8 // (25.6+0.2+1) mm
	}
	return define, mac
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatAll(seen map[float64]bool) []string {
	values := make([]float64, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Float64s(values)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatMM(v)
	}
	return out
}
