package dialog

import (
	"strings"
	"testing"
)

// Фиктивный расчёт цели: детерминированная формула, чтобы проверять
// пересчёт после изменения ответов.
func fakeGoal(weight, height float64, age, activity int) int {
	return int(weight) + int(height) + age + activity
}

func TestFormFullWalk(t *testing.T) {
	form := NewForm(fakeGoal)

	if form.Step != StepWeight {
		t.Fatalf("Expected wizard to start at weight, got step %d", form.Step)
	}

	form.Input("80")
	if form.Step != StepHeight || form.Weight != 80 {
		t.Fatalf("Expected height step with weight 80, got step %d weight %f", form.Step, form.Weight)
	}

	form.Input("180")
	form.Input("25")
	form.Input("40")
	if form.Step != StepCity || form.Activity != 40 {
		t.Fatalf("Expected city step with activity 40, got step %d activity %d", form.Step, form.Activity)
	}

	reply := form.Input("Berlin")
	if form.Step != StepCalorieGoal {
		t.Fatalf("Expected calorie goal step, got %d", form.Step)
	}
	if reply.Keyboard != KeyboardGoal {
		t.Errorf("Expected goal keyboard, got %d", reply.Keyboard)
	}

	// Назад до активности и новый ответ: побеждает последнее значение
	form.Back()
	if form.Step != StepCity {
		t.Fatalf("Expected city step after back, got %d", form.Step)
	}
	form.Back()
	if form.Step != StepActivity {
		t.Fatalf("Expected activity step after second back, got %d", form.Step)
	}

	form.Input("50")
	if form.Activity != 50 {
		t.Errorf("Expected activity overwritten to 50, got %d", form.Activity)
	}
	form.Input("Berlin")

	reply, ok := form.UseDefaultGoal()
	if !ok {
		t.Fatal("Expected UseDefaultGoal to apply at calorie goal step")
	}
	want := fakeGoal(80, 180, 25, 50)
	if form.CalorieGoal != want {
		t.Errorf("Expected recomputed goal %d, got %d", want, form.CalorieGoal)
	}
	if reply.Keyboard != KeyboardConfirm {
		t.Errorf("Expected confirm keyboard, got %d", reply.Keyboard)
	}

	if !form.Confirmable() {
		t.Error("Expected form to be confirmable")
	}
	if !strings.Contains(reply.Text, "Berlin") {
		t.Errorf("Expected summary to contain the city, got %q", reply.Text)
	}
}

func TestFormInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		walk   []string
		input  string
		wantAt Step
	}{
		{"WeightNotANumber", nil, "abc", StepWeight},
		{"WeightZero", nil, "0", StepWeight},
		{"WeightTooLarge", nil, "301", StepWeight},
		{"HeightTooLarge", []string{"80"}, "251", StepHeight},
		{"AgeZero", []string{"80", "180"}, "0", StepAge},
		{"AgeTooLarge", []string{"80", "180"}, "121", StepAge},
		{"ActivityNegative", []string{"80", "180", "25"}, "-1", StepActivity},
		{"ActivityTooLarge", []string{"80", "180", "25"}, "1441", StepActivity},
		{"CityTooShort", []string{"80", "180", "25", "40"}, "A", StepCity},
		{"GoalTooSmall", []string{"80", "180", "25", "40", "Berlin"}, "499", StepCalorieGoal},
		{"GoalTooLarge", []string{"80", "180", "25", "40", "Berlin"}, "10001", StepCalorieGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm(fakeGoal)
			for _, answer := range tt.walk {
				form.Input(answer)
			}

			reply := form.Input(tt.input)
			if form.Step != tt.wantAt {
				t.Errorf("Expected to stay at step %d, got %d", tt.wantAt, form.Step)
			}
			if reply.Text == "" {
				t.Error("Expected a re-prompt message")
			}
		})
	}
}

func TestFormCityRuneLength(t *testing.T) {
	form := NewForm(fakeGoal)
	for _, answer := range []string{"80", "180", "25", "40"} {
		form.Input(answer)
	}

	// Две руны, но больше двух байт
	form.Input("Уфа"[:4])
	if form.Step != StepCalorieGoal {
		t.Errorf("Expected two-rune city to pass, stayed at step %d", form.Step)
	}
}

func TestFormBackAtFirstStep(t *testing.T) {
	form := NewForm(fakeGoal)
	reply := form.Back()

	if form.Step != StepWeight {
		t.Errorf("Expected back at first step to stay put, got step %d", form.Step)
	}
	if reply.Text != weightPrompt {
		t.Errorf("Expected weight prompt, got %q", reply.Text)
	}
}

func TestFormRestart(t *testing.T) {
	form := NewForm(fakeGoal)
	for _, answer := range []string{"80", "180", "25", "40", "Berlin"} {
		form.Input(answer)
	}

	form.Restart()
	if form.Step != StepWeight {
		t.Errorf("Expected restart to return to weight, got step %d", form.Step)
	}
	if form.Weight != 0 || form.City != "" {
		t.Errorf("Expected answers cleared, got weight %f city %q", form.Weight, form.City)
	}

	// defaultGoal переживает рестарт
	for _, answer := range []string{"70", "170", "30", "30"} {
		form.Input(answer)
	}
	if _, ok := form.UseDefaultGoal(); !ok {
		t.Error("Expected UseDefaultGoal to work after restart")
	}
}

func TestFormTextAtConfirmation(t *testing.T) {
	form := NewForm(fakeGoal)
	for _, answer := range []string{"80", "180", "25", "40", "Berlin", "2500"} {
		form.Input(answer)
	}
	if !form.Confirmable() {
		t.Fatal("Expected confirmation step")
	}

	reply := form.Input("да")
	if form.Step != StepConfirmation {
		t.Errorf("Expected to stay at confirmation, got step %d", form.Step)
	}
	if reply.Text != useButtons {
		t.Errorf("Expected button hint, got %q", reply.Text)
	}
}

func TestUseDefaultGoalOutsideGoalStep(t *testing.T) {
	form := NewForm(fakeGoal)
	if _, ok := form.UseDefaultGoal(); ok {
		t.Error("Expected UseDefaultGoal to be a no-op at the weight step")
	}
}
