// internal/food/manager.go
package food

import (
	"context"
	"regexp"
	"strconv"

	"fitness-bot/internal/metrics"
	"fitness-bot/pkg/logger"
)

// NutritionInfo is what can be extracted from a FatSecret food description.
type NutritionInfo struct {
	Calories float64
	Fat      float64
	Carbs    float64
	Protein  float64
}

var (
	caloriesRe = regexp.MustCompile(`Calories:\s*([\d.]+)`)
	fatRe      = regexp.MustCompile(`Fat:\s*([\d.]+)`)
	carbsRe    = regexp.MustCompile(`Carbs:\s*([\d.]+)`)
	proteinRe  = regexp.MustCompile(`Protein:\s*([\d.]+)`)
)

// ParseDescription extracts nutrition values from the free-form description
// field ("Per 100g - Calories: 52kcal | Fat: 0.17g | ..."). The format is
// undocumented, so this is best effort: a miss yields ok=false, not an error.
func ParseDescription(description string) (NutritionInfo, bool) {
	info := NutritionInfo{
		Calories: matchFloat(caloriesRe, description),
		Fat:      matchFloat(fatRe, description),
		Carbs:    matchFloat(carbsRe, description),
		Protein:  matchFloat(proteinRe, description),
	}
	return info, info.Calories > 0
}

func matchFloat(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// Manager отвечает на вопрос "сколько ккал в 100 г продукта", объединяя
// перевод названия, поиск в FatSecret и резервный OpenFoodFacts.
type Manager struct {
	fatsecret  *FatSecretClient
	off        *OFFClient
	translator *Translator
	logger     *logger.Logger
}

func NewManager(fatsecret *FatSecretClient, off *OFFClient, translator *Translator, logger *logger.Logger) *Manager {
	return &Manager{
		fatsecret:  fatsecret,
		off:        off,
		translator: translator,
		logger:     logger,
	}
}

// CaloriesPer100g returns the calories per 100g of the named food, or 0 when
// every lookup fails. It never returns an error: a failed collaborator call
// degrades to "unknown" instead of failing the whole command.
func (m *Manager) CaloriesPer100g(ctx context.Context, foodName string) float64 {
	name := foodName
	if m.translator != nil {
		translated, err := m.translator.Translate(ctx, foodName)
		metrics.ObserveCollaborator("translate", err)
		if err != nil {
			// FatSecret понимает английский ввод, ищем как есть
			m.logger.Warnw("translation failed, using raw name", "food", foodName, "error", err)
		} else {
			name = translated
		}
	}

	foods, err := m.fatsecret.Search(ctx, name, 1)
	metrics.ObserveCollaborator("fatsecret", err)
	if err != nil {
		m.logger.Warnw("food search failed", "food", name, "error", err)
	} else if len(foods) > 0 {
		if info, ok := ParseDescription(foods[0].Description); ok {
			return info.Calories
		}
		m.logger.Warnw("food description not parseable", "food", name, "description", foods[0].Description)
	}

	if m.off != nil {
		kcal, err := m.off.CaloriesPer100g(ctx, name)
		metrics.ObserveCollaborator("openfoodfacts", err)
		if err != nil {
			m.logger.Warnw("fallback food search failed", "food", name, "error", err)
			return 0
		}
		return kcal
	}

	return 0
}
