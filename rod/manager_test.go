//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/clickscribe/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_LaunchesHeadlessBrowser(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithHeadless(true))
	require.NoError(t, err)
	defer manager.Close()

	browser := manager.Browser()
	require.NotNil(t, browser)
	assert.NotZero(t, manager.LauncherPID())

	// Same instance on every call
	assert.Same(t, browser, manager.Browser())
}

func TestBrowserManager_Close_Idempotent(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithHeadless(true))
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())
	assert.Nil(t, manager.Browser())
	assert.Zero(t, manager.LauncherPID())
}

func TestBrowserManager_AttachFailsWithoutBrowser(t *testing.T) {
	t.Parallel()

	// Nothing listens on port 1.
	_, err := rod.NewBrowserManager(rod.WithControlURL("ws://127.0.0.1:1/devtools/browser/none"))

	require.Error(t, err)
}
