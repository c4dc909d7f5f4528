package motivation

import (
	"fmt"
	"strings"

	"github.com/nonzeroday/nzd/internal/stats"
)

const sparkPrompt = `
You are a motivational coach for a user following the "No Zero Days" philosophy.
The user needs a quick boost.
Provide either:
1. A short, punchy motivational quote (max 15 words).
2. A very small, easy "non-zero" task idea that takes less than 5 minutes.
   - IMPORTANT: If generating a task, RANDOMLY select one specific category from: Mental, Physical, Career, Health, Relationship, or Skill. Ensure variety.
   - Examples: "Send a kind text to a friend" (Relationship), "Do 10 squats" (Physical), "Read one paragraph" (Mental), "Organize one desktop folder" (Career), "Meditate for 2 minutes" (Health).

Return the response in this JSON format:
{
  "text": "The content here",
  "type": "quote" OR "task"
}
`

const reflectionPromptTemplate = `
You are a calm, reflective journaling assistant.
Generate a short monthly reflection letter for a user of a "No Zero Day" app.

Inputs:
- Total non-zero days: {{totalDays}}
- Most common win category: {{category}}
- Days with low effort but still non-zero: {{lowEffort}}
- Most difficult day of the month (user note): "{{hardestDay}}"

Rules:
- Max 120 words
- No motivational hype
- No guilt or shame
- Emphasize consistency over performance
- Speak like a thoughtful mentor, not a coach
- Output ONLY the letter text.
`

// Fixed local fallbacks used whenever the upstream call fails; the user
// always sees a result, never an error state.
const (
	FallbackSparkText      = "One small step is better than no steps."
	FallbackReflectionText = "Consistency is the quiet language of growth. You've done well this month."
	emptyReflectionText    = "Keep going. Every day counts."
)

// RestartQuotes soften the confirmation shown before erasing a history
var RestartQuotes = []string{
	"Every moment is a fresh beginning. — T.S. Eliot",
	"Failure is simply the opportunity to begin again, this time more intelligently. — Henry Ford",
	"You are never too old to set another goal or to dream a new dream. — C.S. Lewis",
	"Rock bottom became the solid foundation on which I rebuilt my life. — J.K. Rowling",
	"The secret of getting ahead is getting started. — Mark Twain",
}

func reflectionPrompt(s stats.MonthlyStats) string {
	hardest := s.HardestDayNote
	if hardest == "" {
		hardest = "a quiet day"
	}
	return strings.NewReplacer(
		"{{totalDays}}", fmt.Sprintf("%d", s.TotalDays),
		"{{category}}", s.MostCommonCategory,
		"{{lowEffort}}", fmt.Sprintf("%d", s.LowEffortCount),
		"{{hardestDay}}", hardest,
	).Replace(reflectionPromptTemplate)
}
