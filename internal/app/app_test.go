package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameDiscoveryApp_Initializers(t *testing.T) {
	app := NewGameDiscoveryApp()
	require.NotNil(t, app, "NewGameDiscoveryApp should not return nil")
}
