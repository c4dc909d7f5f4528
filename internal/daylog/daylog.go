// Package daylog defines the data model for logged actions.
// A DayLog records a single "non-zero" action; several logs may land on the
// same calendar day, and the streak collapses them to one day.
package daylog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxReflectionLen is the maximum length of the optional reflection text
const MaxReflectionLen = 120

// Category classifies which area of life an action belongs to
type Category string

const (
	CategoryMental       Category = "mental"
	CategoryPhysical     Category = "physical"
	CategoryCareer       Category = "career"
	CategoryHealth       Category = "health"
	CategoryRelationship Category = "relationship"
	CategorySkill        Category = "skill"
	CategoryOther        Category = "other"
)

// Categories lists all valid categories in display order
var Categories = []Category{
	CategoryMental,
	CategoryPhysical,
	CategoryCareer,
	CategoryHealth,
	CategoryRelationship,
	CategorySkill,
	CategoryOther,
}

// Effort describes how hard the action felt
type Effort string

const (
	EffortEasy   Effort = "easy"
	EffortMedium Effort = "medium"
	EffortHard   Effort = "hard"
)

// Efforts lists all valid effort levels in display order
var Efforts = []Effort{EffortEasy, EffortMedium, EffortHard}

// Common validation errors
var (
	ErrEmptyNote         = errors.New("note cannot be empty")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownEffort     = errors.New("unknown effort")
	ErrMoodOutOfRange    = errors.New("mood must be between 1 and 5")
	ErrReflectionTooLong = fmt.Errorf("reflection cannot exceed %d characters", MaxReflectionLen)
)

// DayLog represents a single logged action.
// Field names in JSON match the persisted blob layout exactly.
type DayLog struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note"`
	Category   Category  `json:"category"`
	Effort     Effort    `json:"effort"`
	MoodBefore int       `json:"moodBefore"`
	MoodAfter  int       `json:"moodAfter"`
	Reflection string    `json:"reflection"`
	// Timestamp duplicates Date as epoch milliseconds. Date is authoritative;
	// Timestamp is kept for blob compatibility and always derived from Date.
	Timestamp int64 `json:"timestamp"`
}

// ParseCategory validates a raw category string from a producer (CLI flag,
// form input). Unknown values are rejected here; display code must instead
// use DisplayLabel, which buckets unknown values rather than failing.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

// ParseEffort validates a raw effort string from a producer
func ParseEffort(raw string) (Effort, error) {
	e := Effort(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Efforts {
		if e == known {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEffort, raw)
}

// DisplayLabel returns a human-readable label for a category. Values not in
// the known set (e.g. from a hand-edited blob) fall back to "Uncategorized"
// so consumers never fail on unrecognized data.
func (c Category) DisplayLabel() string {
	switch c {
	case CategoryMental:
		return "Mental"
	case CategoryPhysical:
		return "Physical"
	case CategoryCareer:
		return "Career"
	case CategoryHealth:
		return "Health"
	case CategoryRelationship:
		return "Relationship"
	case CategorySkill:
		return "Skill"
	case CategoryOther:
		return "Other"
	default:
		return "Uncategorized"
	}
}

// Known reports whether the category is a member of the fixed set
func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// New creates a DayLog stamped at the given time, so the caller's clock is
// the single time source. It does not validate; callers are expected to
// Validate before handing the log to storage.
func New(at time.Time, note string, category Category, effort Effort, moodBefore, moodAfter int, reflection string) DayLog {
	return DayLog{
		ID:         uuid.NewString(),
		Date:       at,
		Note:       strings.TrimSpace(note),
		Category:   category,
		Effort:     effort,
		MoodBefore: moodBefore,
		MoodAfter:  moodAfter,
		Reflection: reflection,
		Timestamp:  at.UnixMilli(),
	}
}

// Validate checks the append preconditions: non-empty note, known category
// and effort, moods in [1,5], reflection within the length cap.
func (l DayLog) Validate() error {
	if strings.TrimSpace(l.Note) == "" {
		return ErrEmptyNote
	}
	if !l.Category.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, string(l.Category))
	}
	validEffort := false
	for _, known := range Efforts {
		if l.Effort == known {
			validEffort = true
			break
		}
	}
	if !validEffort {
		return fmt.Errorf("%w: %q", ErrUnknownEffort, string(l.Effort))
	}
	if l.MoodBefore < 1 || l.MoodBefore > 5 {
		return fmt.Errorf("%w: moodBefore=%d", ErrMoodOutOfRange, l.MoodBefore)
	}
	if l.MoodAfter < 1 || l.MoodAfter > 5 {
		return fmt.Errorf("%w: moodAfter=%d", ErrMoodOutOfRange, l.MoodAfter)
	}
	if len([]rune(l.Reflection)) > MaxReflectionLen {
		return ErrReflectionTooLong
	}
	return nil
}
