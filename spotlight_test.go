package spotlight_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/spotlight"
	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onboardingYAML = `
name: onboarding
key: hasSeenOnboarding
steps:
  - title: Welcome
    description: A quick look around.
    position: center
    buttons: [start, skip, dont-show-again]
  - target: "#sidebar"
    fallback: "#menu"
    title: Sidebar
    description: Everything lives here.
    position: right
    buttons: [next]
  - title: Done
    description: Enjoy.
    position: center
    buttons: [done, dont-show-again]
`

func TestNew_RequiresRenderer(t *testing.T) {
	_, err := spotlight.New("tours")
	assert.ErrorIs(t, err, domain.ErrNoRenderer)
}

func TestNew_RequiresDirWithoutLoader(t *testing.T) {
	_, err := spotlight.New("", spotlight.WithRenderer(headless.New()))
	assert.Error(t, err)
}

func TestEngine_DirectoryLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "onboarding.yaml"), []byte(onboardingYAML), 0644))

	doc := headless.New()
	doc.Add("#menu", domain.Rect{Left: 0, Top: 80, Width: 200, Height: 600}, "")

	eng, err := spotlight.New(dir, spotlight.WithRenderer(doc))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), eng.Name)

	names, err := eng.Loader().ListTours()
	require.NoError(t, err)
	assert.Equal(t, []string{"onboarding"}, names)

	ctx := context.Background()
	eng.StartTour(ctx, "onboarding")
	require.True(t, eng.Session().Active())
	assert.Equal(t, 3, eng.Session().Total)

	eng.Press(ctx, domain.ButtonStart)
	assert.Equal(t, 1, eng.Session().StepIndex)
	eng.PreviousStep(ctx)
	assert.Equal(t, 0, eng.Session().StepIndex)

	eng.SetDontShowAgain(true)
	eng.SkipTour(ctx)
	assert.False(t, eng.Session().Active())

	seen, _, err := eng.Store().Get(ctx, "hasSeenOnboarding")
	require.NoError(t, err)
	assert.True(t, seen)

	eng.StartTour(ctx, "onboarding")
	assert.False(t, eng.Session().Active())

	eng.SetForceShow(true)
	eng.StartTour(ctx, "onboarding")
	assert.True(t, eng.Session().Active())
	assert.True(t, eng.HandleKey(ctx, domain.KeyEscape))
	assert.False(t, eng.Session().Active())
}

func TestEngine_CustomLoaderAndStore(t *testing.T) {
	loader, err := memory.NewLoader(domain.TourDefinition{
		Name:  "solo",
		Key:   "hasSeenSolo",
		Steps: []domain.StepSpec{{Title: "Hi", Position: domain.PositionCenter, Buttons: []domain.ButtonKind{domain.ButtonDone, domain.ButtonDontShowAgain}}},
	})
	require.NoError(t, err)
	store := memory.NewStore()

	var ended []domain.EndReason
	hooks := domain.LifecycleHooks{
		OnTourEnd: func(_ context.Context, ev *domain.TourEvent) { ended = append(ended, ev.Reason) },
	}

	eng, err := spotlight.New("",
		spotlight.WithLoader(loader),
		spotlight.WithStore(store),
		spotlight.WithRenderer(headless.New()),
		spotlight.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)
	assert.Same(t, store, eng.Store())

	ctx := context.Background()
	eng.StartTour(ctx, "solo")
	eng.ToggleDontShowAgain()
	eng.EndTour(ctx)
	assert.Equal(t, []domain.EndReason{domain.EndCompleted}, ended)

	eng.ResetAllTourProgress(ctx, "solo")
	assert.True(t, eng.Session().Active())

	eng.NextStep(ctx)
	assert.Equal(t, []domain.EndReason{domain.EndCompleted, domain.EndCompleted}, ended)
}

func TestEngine_BundledTours(t *testing.T) {
	eng, err := spotlight.New("tours", spotlight.WithRenderer(headless.New()))
	require.NoError(t, err)

	names, err := eng.Loader().ListTours()
	require.NoError(t, err)
	assert.Contains(t, names, "main")
	assert.Contains(t, names, "aiTraining")
}
