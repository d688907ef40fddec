// ABOUTME: Fuzzy resolution of a free-text query against a device list.
// ABOUTME: Near-tied candidates fail as ambiguous instead of silently guessing.

package match

import (
	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/logging"
)

const (
	// ambiguityBand is the score-difference tolerance within which candidates
	// are considered indistinguishable, e.g. two identically-modeled
	// Bluetooth headsets.
	ambiguityBand = 0.05

	// minScore is the minimum acceptance threshold for the best candidate.
	minScore = 0.5
)

// ResolveFuzzy picks the single best-scoring device for the query.
//
// The ambiguity check runs before the minimum-score check: two near-tied
// candidates fail as ambiguous even when both score below the acceptance
// threshold.
func ResolveFuzzy(query string, devices []device.Device) (device.Device, error) {
	type candidate struct {
		dev   device.Device
		score float64
	}

	var candidates []candidate
	top := 0.0
	for _, d := range devices {
		s := Score(query, d.Name)
		if s <= 0 {
			continue
		}
		logging.Debug("fuzzy score %.3f for %q against %q", s, query, d.Name)
		candidates = append(candidates, candidate{dev: d, score: s})
		if s > top {
			top = s
		}
	}

	if len(candidates) == 0 {
		return device.Device{}, apperrors.NewDeviceNotFound(query)
	}

	var banded []candidate
	for _, c := range candidates {
		if top-c.score < ambiguityBand {
			banded = append(banded, c)
		}
	}
	if len(banded) > 1 {
		names := make([]string, 0, len(banded))
		for _, c := range banded {
			names = append(names, c.dev.Name)
		}
		return device.Device{}, apperrors.NewAmbiguousMatch(query, names)
	}

	if top < minScore {
		return device.Device{}, apperrors.NewDeviceNotFound(query)
	}
	return banded[0].dev, nil
}
