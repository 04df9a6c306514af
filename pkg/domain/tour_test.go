package domain_test

import (
	"testing"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTourDefinition_Validate(t *testing.T) {
	valid := domain.TourDefinition{
		Name: "main",
		Key:  "hasSeenMainTour",
		Steps: []domain.StepSpec{
			{Title: "Welcome", Position: domain.PositionCenter, Buttons: []domain.ButtonKind{domain.ButtonStart, domain.ButtonSkip}},
			{Target: "#profile", Title: "Profile", Position: domain.PositionBottom, Buttons: []domain.ButtonKind{domain.ButtonDone}},
		},
	}
	assert.NoError(t, valid.Validate())

	t.Run("unknown position", func(t *testing.T) {
		bad := valid
		bad.Steps = []domain.StepSpec{{Target: "#x", Title: "X", Position: "diagonal"}}
		err := bad.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidTour)
		assert.Contains(t, err.Error(), "diagonal")
	})

	t.Run("unknown button", func(t *testing.T) {
		bad := valid
		bad.Steps = []domain.StepSpec{{Title: "X", Buttons: []domain.ButtonKind{"dontShow"}}}
		assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidTour)
	})

	t.Run("reserved key", func(t *testing.T) {
		bad := valid
		bad.Key = domain.ForceShowKey
		assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidTour)
	})

	t.Run("fallback without target", func(t *testing.T) {
		bad := valid
		bad.Steps = []domain.StepSpec{{Title: "X", Fallback: "#y"}}
		assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidTour)
	})

	t.Run("no steps", func(t *testing.T) {
		bad := valid
		bad.Steps = nil
		assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidTour)
	})
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, domain.ActionNext, domain.KeyAction(domain.KeyArrowRight))
	assert.Equal(t, domain.ActionNext, domain.KeyAction(domain.KeyArrowDown))
	assert.Equal(t, domain.ActionPrevious, domain.KeyAction(domain.KeyArrowLeft))
	assert.Equal(t, domain.ActionPrevious, domain.KeyAction(domain.KeyArrowUp))
	assert.Equal(t, domain.ActionSkip, domain.KeyAction(domain.KeyEscape))
	assert.Equal(t, domain.ActionNone, domain.KeyAction("Enter"))
}

func TestButtonAction(t *testing.T) {
	assert.Equal(t, domain.ActionNext, domain.ButtonAction(domain.ButtonStart))
	assert.Equal(t, domain.ActionEnd, domain.ButtonAction(domain.ButtonDashboard))
	assert.Equal(t, domain.ActionToggle, domain.ButtonAction(domain.ButtonDontShowAgain))
	assert.Equal(t, domain.ActionNone, domain.ButtonAction("unknown"))
}

func TestRect_Expand(t *testing.T) {
	r := domain.Rect{Left: 100, Top: 50, Width: 40, Height: 20}.Expand(domain.HighlightPadding)
	assert.Equal(t, domain.Rect{Left: 88, Top: 38, Width: 64, Height: 44}, r)
	assert.Equal(t, 152.0, r.Right())
	assert.Equal(t, 82.0, r.Bottom())
	assert.Equal(t, "88px", domain.Px(r.Left))
	assert.Equal(t, "12.5px", domain.Px(12.5))
}
