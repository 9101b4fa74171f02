// internal/dialog/dialog.go
package dialog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Step is a state of the onboarding wizard.
type Step int

const (
	StepWeight Step = iota
	StepHeight
	StepAge
	StepActivity
	StepCity
	StepCalorieGoal
	StepConfirmation
)

// Keyboard tells the transport which inline keyboard to attach.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	// KeyboardNav: Назад / Начать заново
	KeyboardNav
	// KeyboardGoal: Использовать рассчитанную цель / Назад / Начать заново
	KeyboardGoal
	// KeyboardConfirm: Всё верно! / Назад / Начать заново
	KeyboardConfirm
)

// Reply is what the wizard wants sent back to the user.
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// Callback actions understood by the wizard.
const (
	ActionBack       = "back"
	ActionRestart    = "restart"
	ActionUseDefault = "use_default"
	ActionConfirm    = "confirm_yes"
)

// GoalFunc derives the default calorie goal from the accumulated answers.
type GoalFunc func(weight, height float64, age, activity int) int

// Form — линейный мастер анкеты: накопленные ответы плюс текущий шаг.
// Никакого ввода-вывода, все переходы чистые.
type Form struct {
	Step        Step
	Weight      float64
	Height      float64
	Age         int
	Activity    int
	City        string
	CalorieGoal int

	defaultGoal GoalFunc
}

func NewForm(defaultGoal GoalFunc) *Form {
	return &Form{Step: StepWeight, defaultGoal: defaultGoal}
}

// Prompt returns the message for the current step.
func (f *Form) Prompt() Reply {
	switch f.Step {
	case StepWeight:
		return Reply{Text: weightPrompt}
	case StepHeight:
		return Reply{Text: heightPrompt, Keyboard: KeyboardNav}
	case StepAge:
		return Reply{Text: agePrompt, Keyboard: KeyboardNav}
	case StepActivity:
		return Reply{Text: activityPrompt, Keyboard: KeyboardNav}
	case StepCity:
		return Reply{Text: cityPrompt, Keyboard: KeyboardNav}
	case StepCalorieGoal:
		return Reply{
			Text:     fmt.Sprintf(calorieGoalPrompt, f.defaultGoal(f.Weight, f.Height, f.Age, f.Activity)),
			Keyboard: KeyboardGoal,
		}
	case StepConfirmation:
		return Reply{Text: f.summary(), Keyboard: KeyboardConfirm}
	default:
		return Reply{Text: weightPrompt}
	}
}

// Input feeds a free-text answer to the current step. Invalid input
// re-prompts without advancing.
func (f *Form) Input(text string) Reply {
	text = strings.TrimSpace(text)

	switch f.Step {
	case StepWeight:
		weight, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Reply{Text: invalidNumber}
		}
		if weight <= 0 || weight > 300 {
			return Reply{Text: weightInvalid}
		}
		f.Weight = weight
		f.Step = StepHeight
		return Reply{Text: fmt.Sprintf(weightAccepted, weight) + "\n\n" + heightPrompt, Keyboard: KeyboardNav}

	case StepHeight:
		height, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Reply{Text: invalidNumber}
		}
		if height <= 0 || height > 250 {
			return Reply{Text: heightInvalid}
		}
		f.Height = height
		f.Step = StepAge
		return Reply{Text: fmt.Sprintf(heightAccepted, height) + "\n\n" + agePrompt, Keyboard: KeyboardNav}

	case StepAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			return Reply{Text: invalidNumber}
		}
		if age < 1 || age > 120 {
			return Reply{Text: ageInvalid}
		}
		f.Age = age
		f.Step = StepActivity
		return Reply{Text: fmt.Sprintf(ageAccepted, age) + "\n\n" + activityPrompt, Keyboard: KeyboardNav}

	case StepActivity:
		activity, err := strconv.Atoi(text)
		if err != nil {
			return Reply{Text: invalidNumber}
		}
		if activity < 0 || activity > 1440 {
			return Reply{Text: activityInvalid}
		}
		f.Activity = activity
		f.Step = StepCity
		return Reply{Text: fmt.Sprintf(activityAccepted, activity) + "\n\n" + cityPrompt, Keyboard: KeyboardNav}

	case StepCity:
		if n := utf8.RuneCountInString(text); n < 2 || n > 50 {
			return Reply{Text: cityInvalid}
		}
		f.City = text
		f.Step = StepCalorieGoal
		return f.Prompt()

	case StepCalorieGoal:
		goal, err := strconv.Atoi(text)
		if err != nil {
			return Reply{Text: invalidNumber}
		}
		if goal < 500 || goal > 10000 {
			return Reply{Text: calorieGoalInvalid}
		}
		f.CalorieGoal = goal
		f.Step = StepConfirmation
		return f.Prompt()

	case StepConfirmation:
		return Reply{Text: useButtons, Keyboard: KeyboardConfirm}

	default:
		return Reply{Text: invalidNumber}
	}
}

// Back returns to the previous step, keeping every accepted answer.
// At the first step it is a no-op.
func (f *Form) Back() Reply {
	switch f.Step {
	case StepHeight:
		f.Step = StepWeight
	case StepAge:
		f.Step = StepHeight
	case StepActivity:
		f.Step = StepAge
	case StepCity:
		f.Step = StepActivity
	case StepCalorieGoal:
		f.Step = StepCity
	case StepConfirmation:
		f.Step = StepCalorieGoal
	}
	return f.Prompt()
}

// Restart clears all accumulated answers and returns to the first step.
func (f *Form) Restart() Reply {
	*f = Form{Step: StepWeight, defaultGoal: f.defaultGoal}
	return Reply{Text: restartMessage}
}

// UseDefaultGoal substitutes the computed calorie goal without numeric input.
// Only meaningful at the calorie_goal step.
func (f *Form) UseDefaultGoal() (Reply, bool) {
	if f.Step != StepCalorieGoal {
		return Reply{}, false
	}
	f.CalorieGoal = f.defaultGoal(f.Weight, f.Height, f.Age, f.Activity)
	f.Step = StepConfirmation
	return f.Prompt(), true
}

// Confirmable reports whether the wizard reached the confirmation step.
func (f *Form) Confirmable() bool {
	return f.Step == StepConfirmation
}

func (f *Form) summary() string {
	return fmt.Sprintf(confirmationTemplate,
		f.Weight, f.Height, f.Age, f.Activity, f.City, f.CalorieGoal)
}
