package validator

import (
	"testing"

	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttons(b ...domain.ButtonKind) []domain.ButtonKind { return b }

func TestValidateTour(t *testing.T) {
	valid := domain.TourDefinition{
		Name: "main",
		Key:  "hasSeenMainTour",
		Steps: []domain.StepSpec{
			{Title: "Welcome", Buttons: buttons(domain.ButtonStart, domain.ButtonSkip, domain.ButtonDontShowAgain)},
			{Target: "#nav", Fallback: ".nav", Title: "Nav", Buttons: buttons(domain.ButtonNext)},
			{Title: "Done", Buttons: buttons(domain.ButtonDone, domain.ButtonDontShowAgain)},
		},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.TourDefinition)
		page    func() *headless.Document
		wantErr []string
	}{
		{name: "Valid"},
		{
			name:    "Structural Error",
			mutate:  func(t *domain.TourDefinition) { t.Key = "" },
			wantErr: []string{"key is required"},
		},
		{
			name:    "Dead End Step",
			mutate:  func(t *domain.TourDefinition) { t.Steps[1].Buttons = buttons(domain.ButtonSkip) },
			wantErr: []string{`step 1 ("Nav"): no start or next control`},
		},
		{
			name:    "Last Step Cannot Finish",
			mutate:  func(t *domain.TourDefinition) { t.Steps[2].Buttons = buttons(domain.ButtonDontShowAgain) },
			wantErr: []string{"last step cannot finish the tour"},
		},
		{
			name:    "Checkbox Never Applied",
			mutate:  func(t *domain.TourDefinition) { t.Steps[1].Buttons = buttons(domain.ButtonNext, domain.ButtonDontShowAgain) },
			wantErr: []string{"don't-show-again is never applied"},
		},
		{
			name: "Fallback Resolves",
			page: func() *headless.Document {
				doc := headless.New()
				doc.Add(".nav", domain.Rect{Width: 1, Height: 1}, "")
				return doc
			},
		},
		{
			name:    "Target Missing",
			page:    func() *headless.Document { return headless.New() },
			wantErr: []string{`neither target "#nav" nor fallback ".nav" found`},
		},
		{
			name: "Nothing Resolves",
			mutate: func(t *domain.TourDefinition) {
				t.Steps = []domain.StepSpec{{Target: "#ghost", Title: "Ghost", Buttons: buttons(domain.ButtonDone)}}
			},
			page:    func() *headless.Document { return headless.New() },
			wantErr: []string{`target "#ghost" not found`, "no step can be shown on this page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := valid
			tour.Steps = append([]domain.StepSpec(nil), valid.Steps...)
			if tt.mutate != nil {
				tt.mutate(&tour)
			}

			var err error
			if tt.page != nil {
				err = ValidateTour(tour, tt.page())
			} else {
				err = ValidateTour(tour, nil)
			}

			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
