package http

import (
	"time"

	"ai-health-platform/internal/habit"
)

// --- Request DTOs ---

type createHabitReq struct {
	Name             string   `json:"name"              binding:"required,min=1,max=255"`
	Description      *string  `json:"description"       binding:"omitempty,max=2000"`
	Frequency        string   `json:"frequency"         binding:"omitempty,oneof=daily weekly custom"`
	TargetConditions []string `json:"target_conditions" binding:"omitempty,dive,oneof=diabetes heart_disease pcos"`
	ImpactLevel      string   `json:"impact_level"      binding:"omitempty,oneof=low medium high"`
	Rationale        *string  `json:"rationale"         binding:"omitempty,max=2000"`
}

func (r createHabitReq) toInput() habit.CreateInput {
	return habit.CreateInput{
		Name:             r.Name,
		Description:      r.Description,
		Frequency:        r.Frequency,
		TargetConditions: r.TargetConditions,
		ImpactLevel:      r.ImpactLevel,
		Rationale:        r.Rationale,
	}
}

type logHabitReq struct {
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

type suggestionsReq struct {
	DiseaseType string `form:"disease_type" binding:"omitempty"`
}

// --- Response DTOs ---

type habitResp struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      *string    `json:"description,omitempty"`
	Frequency        string     `json:"frequency"`
	TargetConditions []string   `json:"target_conditions"`
	ImpactLevel      string     `json:"impact_level"`
	Rationale        *string    `json:"rationale,omitempty"`
	StreakCount      int        `json:"streak_count"`
	TotalCompletions int        `json:"total_completions"`
	LastCompletedAt  *time.Time `json:"last_completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func newHabitResp(h habit.Habit) habitResp {
	return habitResp{
		ID:               h.ID,
		Name:             h.Name,
		Description:      h.Description,
		Frequency:        h.Frequency,
		TargetConditions: h.TargetConditions,
		ImpactLevel:      h.ImpactLevel,
		Rationale:        h.Rationale,
		StreakCount:      h.StreakCount,
		TotalCompletions: h.TotalCompletions,
		LastCompletedAt:  h.LastCompletedAt,
		CreatedAt:        h.CreatedAt,
	}
}

func newHabitListResp(habits []habit.Habit) []habitResp {
	items := make([]habitResp, 0, len(habits))
	for _, h := range habits {
		items = append(items, newHabitResp(h))
	}
	return items
}

type logResp struct {
	Message string `json:"message"`
	Streak  int    `json:"streak"`
}
