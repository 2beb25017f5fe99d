package tradesettings

import (
	"io/ioutil"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/tradedeck/tradedeck"
	"github.com/xeipuuv/gojsonschema"
)

// settingsSchema describes the full trade-settings document accepted by
// ApplyFile. Kept strict so a typoed field name fails locally instead of
// being silently dropped server-side.
const settingsSchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "TradeSettings",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"tradingView": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"tradingKey": { "type": "string" },
				"alertMessage": { "type": "string" },
				"conditionalAlertData": { "type": "string" },
				"webhookUrl": { "type": "string" }
			}
		},
		"amibroker": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"tradingKey": { "type": "string" },
				"signalTemplate": { "type": "string" }
			}
		},
		"chartInk": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"alertData": { "type": "string" }
			}
		}
	}
}
`

// loadSettingsFile reads a JSON or YAML settings document and validates it
// against the settings schema. It returns the document as JSON.
func loadSettingsFile(filename string) ([]byte, error) {
	settingsBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading settings file %s",
			filename,
		)
	}
	if strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml") {
		if settingsBytes, err = yaml.YAMLToJSON(settingsBytes); err != nil {
			return nil, errors.Wrapf(
				err,
				"error converting settings file %s to JSON",
				filename,
			)
		}
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(settingsSchema),
		gojsonschema.NewBytesLoader(settingsBytes),
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error validating settings file %s",
			filename,
		)
	}
	if !result.Valid() {
		fieldErrs := tradedeck.FieldErrors{}
		for _, resultErr := range result.Errors() {
			fieldErrs[resultErr.Field()] = resultErr.Description()
		}
		return nil, fieldErrs
	}
	return settingsBytes, nil
}
