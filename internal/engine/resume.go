package engine

import "github.com/praxise/interview-backend/internal/model"

// lowAlignmentDefault is used when a resume record arrives malformed or
// empty. Malformed resume input degrades to this instead of erroring.
const lowAlignmentDefault = 25

// NormalizeResume sanitizes an incoming resume analysis record. A nil or
// effectively empty record becomes a minimal low-alignment record; alignment
// parts are clamped to [0,100].
func NormalizeResume(r *model.ResumeAnalysis) *model.ResumeAnalysis {
	if r == nil || (len(r.Skills) == 0 && len(r.Sections) == 0 && len(r.Strengths) == 0) {
		return &model.ResumeAnalysis{
			Sections: map[string]string{},
			Alignment: model.AlignmentScore{
				Skills:     lowAlignmentDefault,
				Experience: lowAlignmentDefault,
				Education:  lowAlignmentDefault,
				Overall:    lowAlignmentDefault,
			},
		}
	}

	out := *r
	if out.Sections == nil {
		out.Sections = map[string]string{}
	}
	out.Alignment.Skills = clampPct(out.Alignment.Skills)
	out.Alignment.Experience = clampPct(out.Alignment.Experience)
	out.Alignment.Education = clampPct(out.Alignment.Education)
	out.Alignment.Overall = clampPct(out.Alignment.Overall)
	return &out
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
