package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// Untagged is the sentinel tag that absorbs the full duration of
// sessions carrying no tags. Its id is stable so renderers can style
// it consistently.
var Untagged = domain.Tag{
	ID:    "untagged",
	Name:  "Untagged",
	Icon:  "○",
	Color: "#928374",
}

// OthersTagID is the id of the synthetic entry TruncateShares folds
// the tail into.
const OthersTagID = "others"

// TagShare is one tag's attribution of session time within a range.
// Durations accumulate in minutes internally and are emitted in
// seconds to match renderer expectations.
type TagShare struct {
	TagID             string
	Tag               domain.Tag
	DurationSeconds   int
	SessionCount      int
	PercentageOfTotal float64
}

// TagBreakdown is the full allocation result. Shares are ranked
// descending by duration with catalog-order tie-breaks; consumers
// must not re-sort without re-deriving percentages.
type TagBreakdown struct {
	Shares               []TagShare
	TotalDurationSeconds int
	TotalSessions        int
}

// AllocateTags splits each qualifying session's duration across its
// tags and aggregates per-tag totals, counts, and percentages.
// Qualifying means a productive type, positive duration, and a date
// inside [rangeStart, rangeEnd]. A session with N tags contributes
// duration/N to each; a session with none contributes in full to the
// Untagged sentinel. Tag ids missing from the catalog resolve to the
// sentinel as well, so stale references degrade instead of vanishing.
func AllocateTags(sessions []domain.Session, catalog []domain.Tag, rangeStart, rangeEnd time.Time) TagBreakdown {
	byID := make(map[string]domain.Tag, len(catalog))
	order := make(map[string]int, len(catalog)+1)
	for i, tag := range catalog {
		byID[tag.ID] = tag
		order[tag.ID] = i
	}
	order[Untagged.ID] = len(catalog) // sentinel ranks after the catalog on ties

	start, end := domain.Day(rangeStart), domain.Day(rangeEnd)
	minutes := make(map[string]float64)
	counts := make(map[string]int)
	totalMinutes := 0.0
	totalSessions := 0

	for _, s := range sessions {
		if !s.Type.Counted() || s.DurationMinutes <= 0 {
			continue
		}
		day := domain.Day(s.Date)
		if day.Before(start) || day.After(end) {
			continue
		}

		totalSessions++
		totalMinutes += float64(s.DurationMinutes)

		ids := resolveTagIDs(s.TagIDs, byID)
		split := float64(s.DurationMinutes) / float64(len(ids))
		for _, id := range ids {
			minutes[id] += split
			counts[id]++
		}
	}

	shares := make([]TagShare, 0, len(minutes))
	for id, mins := range minutes {
		tag, ok := byID[id]
		if !ok {
			tag = Untagged
		}
		share := TagShare{
			TagID:           id,
			Tag:             tag,
			DurationSeconds: int(math.Round(mins * 60)),
			SessionCount:    counts[id],
		}
		if totalMinutes > 0 {
			share.PercentageOfTotal = mins / totalMinutes * 100
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].DurationSeconds != shares[j].DurationSeconds {
			return shares[i].DurationSeconds > shares[j].DurationSeconds
		}
		return order[shares[i].TagID] < order[shares[j].TagID]
	})

	return TagBreakdown{
		Shares:               shares,
		TotalDurationSeconds: int(math.Round(totalMinutes * 60)),
		TotalSessions:        totalSessions,
	}
}

// resolveTagIDs maps a session's tag list onto catalog ids, folding
// empty lists and unresolvable references into the Untagged sentinel.
// Duplicate sentinel hits collapse so the split stays even.
func resolveTagIDs(tagIDs []string, byID map[string]domain.Tag) []string {
	if len(tagIDs) == 0 {
		return []string{Untagged.ID}
	}
	ids := make([]string, 0, len(tagIDs))
	sawUntagged := false
	for _, id := range tagIDs {
		if _, ok := byID[id]; ok {
			ids = append(ids, id)
			continue
		}
		if !sawUntagged {
			ids = append(ids, Untagged.ID)
			sawUntagged = true
		}
	}
	if len(ids) == 0 {
		return []string{Untagged.ID}
	}
	return ids
}

// TruncateShares keeps the top `keep` shares and collapses the rest
// into one synthetic "N others" entry summing their duration,
// percentage, and session counts. This is a display helper; the
// untruncated breakdown remains the source of truth.
func TruncateShares(shares []TagShare, keep int) []TagShare {
	if len(shares) <= keep || keep < 0 {
		return shares
	}

	out := make([]TagShare, keep, keep+1)
	copy(out, shares[:keep])

	rest := shares[keep:]
	others := TagShare{
		TagID: OthersTagID,
		Tag: domain.Tag{
			ID:    OthersTagID,
			Name:  fmt.Sprintf("%d others", len(rest)),
			Icon:  "…",
			Color: Untagged.Color,
		},
	}
	for _, s := range rest {
		others.DurationSeconds += s.DurationSeconds
		others.PercentageOfTotal += s.PercentageOfTotal
		others.SessionCount += s.SessionCount
	}
	return append(out, others)
}
