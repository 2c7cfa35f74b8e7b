package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cookbook/internal/model"
)

func newTestApp(t *testing.T) fyne.App {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return app
}

func testContext() context.Context {
	return context.Background()
}

func testRecipe() model.Recipe {
	return model.StrawberryCake()
}

func mustLoadResources(t *testing.T) *Resources {
	t.Helper()
	res, err := LoadResources()
	require.NoError(t, err)
	return res
}
