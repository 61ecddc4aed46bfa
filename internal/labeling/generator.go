// Package labeling generates LLM-assisted weak relevance labels for
// (resume, job) pairs.
package labeling

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/types"
)

// Evidence and notes limits enforced on every parsed payload.
const (
	maxEvidenceItems = 4
	minEvidenceItems = 2
	maxEvidenceChars = 200
	maxNotesChars    = 500
)

// shuffleSeed fixes the pair visitation order so interrupted runs resume over
// the same sequence. Shuffling itself reduces positional bias in the judge.
const shuffleSeed = 42

// Outcome is the result of labeling one pair. Fallback outcomes carry the
// neutral label and low confidence; Reason says what went wrong.
type Outcome struct {
	Record   types.LabelRecord
	Fallback bool
	Reason   string
}

// Generator produces weak labels on the 1-5 scale via an LLM judge.
type Generator struct {
	Client llm.Client
	Tier   llm.ModelTier
	Scale  types.LabelScale
}

// NewGenerator creates a generator using the lite model tier and the 1-5
// weak-label scale.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		Client: client,
		Tier:   llm.TierLite,
		Scale:  types.ScaleWeak,
	}
}

// labelPayload is the JSON shape the judge is asked to return.
type labelPayload struct {
	Label      int      `json:"label"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
	Notes      string   `json:"notes"`
}

// LabelPair labels a single (resume, job) pair. Generation or parse failures
// never abort the run: the pair gets the neutral label with NeutralConfidence
// and the outcome is marked as a fallback so it can be flagged for manual
// review.
func (g *Generator) LabelPair(ctx context.Context, resume *types.Resume, job *types.JobPosting) Outcome {
	raw, err := g.Client.GenerateJSON(ctx, buildPrompt(resume, job), g.Tier)
	if err != nil {
		return g.fallback(resume, job, fmt.Sprintf("generation failed: %v", err))
	}

	var payload labelPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return g.fallback(resume, job, fmt.Sprintf("malformed judge response: %v", err))
	}

	return Outcome{Record: g.sanitize(resume, job, payload)}
}

// sanitize clamps a parsed payload into a valid label record.
func (g *Generator) sanitize(resume *types.Resume, job *types.JobPosting, payload labelPayload) types.LabelRecord {
	label := payload.Label
	if !g.Scale.Contains(label) {
		label = g.Scale.NeutralLabel()
	}

	confidence := payload.Confidence
	if confidence < 0 || confidence > 1 || math.IsNaN(confidence) {
		confidence = 0.5
	}
	confidence = math.Round(confidence*100) / 100

	evidence := payload.Evidence
	if len(evidence) > maxEvidenceItems {
		evidence = evidence[:maxEvidenceItems]
	}
	for i, item := range evidence {
		evidence[i] = truncateRunes(item, maxEvidenceChars)
	}
	for len(evidence) < minEvidenceItems {
		evidence = append(evidence, "Additional context needed")
	}

	notes := truncateRunes(payload.Notes, maxNotesChars)

	return types.LabelRecord{
		ResumeID:   resume.ResumeID,
		JobID:      job.JobID,
		Label:      label,
		Confidence: confidence,
		Evidence:   evidence,
		Notes:      notes,
	}
}

// truncateRunes cuts s to at most max runes, never splitting a UTF-8 sequence.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// fallback builds the neutral outcome for a failed pair.
func (g *Generator) fallback(resume *types.Resume, job *types.JobPosting, reason string) Outcome {
	return Outcome{
		Record: types.LabelRecord{
			ResumeID:   resume.ResumeID,
			JobID:      job.JobID,
			Label:      g.Scale.NeutralLabel(),
			Confidence: types.NeutralConfidence,
			Evidence:   []string{"LLM labeling unavailable", "Default label assigned"},
			Notes:      "Fallback label (LLM unavailable) - requires manual review",
		},
		Fallback: true,
		Reason:   reason,
	}
}

// RunStats summarizes a GenerateAll run.
type RunStats struct {
	Total     int
	Reused    int
	Generated int
	Fallbacks int
}

// GenerateAll labels every (resume, job) combination. Pairs already present
// in existing are reused untouched, so an interrupted run can be resumed by
// feeding its partial output back in. The visitation order is a seeded
// shuffle of the full cross product.
func (g *Generator) GenerateAll(ctx context.Context, resumes []types.Resume, jobs []types.JobPosting, existing map[types.PairKey]types.LabelRecord) ([]types.LabelRecord, RunStats, error) {
	type pair struct {
		resume *types.Resume
		job    *types.JobPosting
	}

	pairs := make([]pair, 0, len(resumes)*len(jobs))
	for i := range resumes {
		for j := range jobs {
			pairs = append(pairs, pair{resume: &resumes[i], job: &jobs[j]})
		}
	}
	rng := rand.New(rand.NewSource(shuffleSeed))
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	stats := RunStats{Total: len(pairs)}
	labels := make([]types.LabelRecord, 0, len(pairs))

	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		key := types.PairKey{ResumeID: p.resume.ResumeID, JobID: p.job.JobID}
		if record, ok := existing[key]; ok {
			labels = append(labels, record)
			stats.Reused++
			continue
		}

		outcome := g.LabelPair(ctx, p.resume, p.job)
		if outcome.Fallback {
			stats.Fallbacks++
			log.Printf("Warning: fallback label for %s x %s: %s", key.ResumeID, key.JobID, outcome.Reason)
		}
		labels = append(labels, outcome.Record)
		stats.Generated++

		if (i+1)%10 == 0 {
			log.Printf("Labeling progress: %d/%d (%d reused, %d generated)", i+1, len(pairs), stats.Reused, stats.Generated)
		}
	}

	return labels, stats, nil
}
