package memory_test

import (
	"testing"

	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tour(name string) domain.TourDefinition {
	return domain.TourDefinition{
		Name: name,
		Key:  "seen-" + name,
		Steps: []domain.StepSpec{
			{Title: "Welcome", Position: domain.PositionCenter, Buttons: []domain.ButtonKind{domain.ButtonStart}},
		},
	}
}

func TestLoader_GetAndList(t *testing.T) {
	loader, err := memory.NewLoader(tour("main"), tour("aiTraining"))
	require.NoError(t, err)

	names, err := loader.ListTours()
	require.NoError(t, err)
	assert.Equal(t, []string{"aiTraining", "main"}, names)

	got, err := loader.GetTour("main")
	require.NoError(t, err)
	assert.Equal(t, "seen-main", got.Key)

	_, err = loader.GetTour("missing")
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestLoader_ReturnsCopies(t *testing.T) {
	loader, err := memory.NewLoader(tour("main"))
	require.NoError(t, err)

	got, _ := loader.GetTour("main")
	got.Steps[0].Title = "mutated"
	got.Steps[0].Buttons[0] = domain.ButtonSkip

	again, _ := loader.GetTour("main")
	assert.Equal(t, "Welcome", again.Steps[0].Title)
	assert.Equal(t, domain.ButtonStart, again.Steps[0].Buttons[0])
}

func TestLoader_RejectsInvalidAndDuplicates(t *testing.T) {
	bad := tour("main")
	bad.Key = ""
	_, err := memory.NewLoader(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidTour)

	_, err = memory.NewLoader(tour("main"), tour("main"))
	assert.Error(t, err)
}
