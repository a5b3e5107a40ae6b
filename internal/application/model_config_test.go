package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelConfigBuilderAppliesDefaults(t *testing.T) {
	t.Parallel()

	signature, err := NewSignatureBuilder("Image", "image", "png").AddParameter("image", "image", "png").Build()
	require.NoError(t, err)
	assert.Equal(t, domain.ReceiveFile, signature.ReceiveFormat)
	assert.Equal(t, domain.LocationBody, signature.HTTPLocation)

	config, err := NewModelConfigBuilder("Classifier", "short", "long").AddInput(signature).Build()
	require.NoError(t, err)

	assert.Equal(t, DefaultVersionLabel, config.VersionLabel)
	assert.Equal(t, domain.HostingInternal, config.HostingLocation)
	assert.Equal(t, domain.OutputJSON, config.OutputFormat)
	assert.Equal(t, domain.RequestPost, config.RequestType)
	assert.Equal(t, map[string]string{}, config.HTTPHeaders)
	assert.Equal(t, domain.ModelTypePytorchJIT, config.ModelType())

	model := config.ToModel("acc-1")
	require.Len(t, model.Inputs, 1)
	assert.Equal(t, domain.SignatureInput, model.Inputs[0].SignatureType)
	assert.Equal(t, []domain.ModelParam{{ParameterName: "image", DataDomain: "image", DataEncoding: "png"}}, model.Inputs[0].Parameters)
}

func TestModelConfigExternalModelIsAPI(t *testing.T) {
	t.Parallel()

	config, err := NewModelConfigBuilder("Remote", "short", "long").
		WithHosting(domain.HostingExternal).
		WithURL("https://models.example.com/predict").
		WithRequestType(domain.RequestPut).
		WithHTTPHeaders(map[string]string{"X-Key": "1"}).
		Build()
	require.NoError(t, err)

	model := config.ToModel("acc-1")
	assert.Equal(t, domain.ModelTypeAPI, model.ModelType)
	assert.Equal(t, "https://models.example.com/predict", model.URL)
	assert.Equal(t, domain.RequestPut, model.RequestType)
}

func TestModelConfigValidationListsEveryField(t *testing.T) {
	t.Parallel()

	_, err := NewModelConfigBuilder("", "", "long").
		WithHosting(domain.HostingExternal).
		AddInput(SignatureConfig{DisplayTitle: "X", Parameters: []ParamConfig{{ParameterName: "x"}}}).
		AddAsset("Logo", "Carrier", "x").
		Build()

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{
		"name",
		"short_description",
		"url",
		"inputs[0].data_domain",
		"inputs[0].data_encoding",
		"inputs[0].parameters[0].data_domain",
		"inputs[0].parameters[0].data_encoding",
		"assets[0].source",
	}, validation.Fields)
}

func TestSignatureBuilderRequiresParameters(t *testing.T) {
	t.Parallel()

	_, err := NewSignatureBuilder("X", "text", "utf8").Build()

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"signature[0].parameters"}, validation.Fields)
}

func TestInvocationBuilderRejectsDuplicatesAndBadTransports(t *testing.T) {
	t.Parallel()

	_, err := NewInvocationBuilder("Doubler").
		AddInput("X", domain.TransportPrimitive, 1).
		AddInput("X", "pigeon", nil).
		Build()

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"inputs[1].display_title (duplicate)", "inputs[1].source", "inputs[1].data"}, validation.Fields)
}

func TestLoadModelConfigFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Doubler
short_description: doubles numbers
long_description: doubles every number it receives
inputs:
  - display_title: X
    data_domain: number
    data_encoding: json
    parameters:
      - parameter_name: x
        data_domain: number
        data_encoding: json
outputs:
  - display_title: Y
    data_domain: number
    data_encoding: json
    receive_format: Primitive
    parameters:
      - parameter_name: y
        data_domain: number
        data_encoding: json
assets:
  - asset_name: Weights
    source: file
    data: ./weights.pt
`), 0o600))

	config, err := LoadModelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Doubler", config.Name)
	assert.Equal(t, domain.ReceivePrimitive, config.Outputs[0].ReceiveFormat)
	assert.Equal(t, domain.ReceiveFile, config.Inputs[0].ReceiveFormat)

	items, err := config.TransferItems()
	require.NoError(t, err)
	assert.Equal(t, []domain.TransferItem{{Name: "Weights", Transport: domain.TransportPath, Payload: "./weights.pt"}}, items)
}

func TestLoadInvocationConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_name: Doubler\nmodel: typo\n"), 0o600))

	_, err := LoadInvocationConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestLoadInvocationConfigFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model_name: Doubler
inputs:
  - display_title: X
    source: Primitive
    data: 42
`), 0o600))

	config, err := LoadInvocationConfig(path)
	require.NoError(t, err)

	items, err := config.TransferItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.TransportPrimitive, items[0].Transport)
	assert.Equal(t, "42", primitiveText(items[0].Payload))
}
