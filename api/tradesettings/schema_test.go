package tradesettings

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradedeck/tradedeck"
)

func writeTestFile(t *testing.T, name, content string) string {
	filename := path.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(filename, []byte(content), 0600))
	return filename
}

func TestLoadSettingsFileJSON(t *testing.T) {
	filename := writeTestFile(
		t,
		"settings.json",
		`{"tradingView":{"tradingKey":"key","alertMessage":"fire"}}`,
	)
	settingsBytes, err := loadSettingsFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(settingsBytes), `"tradingKey"`)
}

func TestLoadSettingsFileYAML(t *testing.T) {
	filename := writeTestFile(
		t,
		"settings.yaml",
		"amibroker:\n  tradingKey: key\n  signalTemplate: tmpl\n",
	)
	settingsBytes, err := loadSettingsFile(filename)
	require.NoError(t, err)
	// YAML is converted to JSON before submission.
	require.Contains(t, string(settingsBytes), `"signalTemplate"`)
}

func TestLoadSettingsFileRejectsUnknownFields(t *testing.T) {
	filename := writeTestFile(
		t,
		"settings.json",
		`{"tradingVeiw":{"tradingKey":"key"}}`,
	)
	_, err := loadSettingsFile(filename)
	require.Error(t, err)
	require.IsType(t, tradedeck.FieldErrors{}, err)
}

func TestLoadSettingsFileMissing(t *testing.T) {
	_, err := loadSettingsFile(path.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
