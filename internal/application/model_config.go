package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/norman-ai/norman-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

const DefaultVersionLabel = "v1.0"

type ParamConfig struct {
	ParameterName string `yaml:"parameter_name"`
	DataDomain    string `yaml:"data_domain"`
	DataEncoding  string `yaml:"data_encoding"`
}

type SignatureConfig struct {
	DisplayTitle  string               `yaml:"display_title"`
	DataDomain    string               `yaml:"data_domain"`
	DataEncoding  string               `yaml:"data_encoding"`
	ReceiveFormat domain.ReceiveFormat `yaml:"receive_format,omitempty"`
	HTTPLocation  domain.HTTPLocation  `yaml:"http_location,omitempty"`
	Hidden        bool                 `yaml:"hidden,omitempty"`
	DefaultValue  *string              `yaml:"default_value,omitempty"`
	Parameters    []ParamConfig        `yaml:"parameters"`
}

// AssetConfig names one asset and where its bytes come from. Data is a URL,
// a file path or primitive text, or an io.Reader for the Stream transport.
type AssetConfig struct {
	AssetName string           `yaml:"asset_name"`
	Source    domain.Transport `yaml:"source"`
	Data      any              `yaml:"data"`
}

type ModelConfig struct {
	Name             string                 `yaml:"name"`
	VersionLabel     string                 `yaml:"version_label,omitempty"`
	ShortDescription string                 `yaml:"short_description"`
	LongDescription  string                 `yaml:"long_description"`
	URL              string                 `yaml:"url,omitempty"`
	RequestType      domain.HTTPRequestType `yaml:"request_type,omitempty"`
	HostingLocation  domain.HostingLocation `yaml:"hosting_location,omitempty"`
	OutputFormat     domain.OutputFormat    `yaml:"output_format,omitempty"`
	HTTPHeaders      map[string]string      `yaml:"http_headers,omitempty"`
	Inputs           []SignatureConfig      `yaml:"inputs"`
	Outputs          []SignatureConfig      `yaml:"outputs"`
	Assets           []AssetConfig          `yaml:"assets"`
}

type InputConfig struct {
	DisplayTitle string           `yaml:"display_title"`
	Source       domain.Transport `yaml:"source"`
	Data         any              `yaml:"data"`
}

type InvocationConfig struct {
	ModelName string        `yaml:"model_name"`
	Inputs    []InputConfig `yaml:"inputs"`
}

func (c *ModelConfig) applyDefaults() {
	if c.VersionLabel == "" {
		c.VersionLabel = DefaultVersionLabel
	}
	if c.HostingLocation == "" {
		c.HostingLocation = domain.HostingInternal
	}
	if c.OutputFormat == "" {
		c.OutputFormat = domain.OutputJSON
	}
	if c.RequestType == "" {
		c.RequestType = domain.RequestPost
	}
	if c.HTTPHeaders == nil {
		c.HTTPHeaders = map[string]string{}
	}
	for i := range c.Inputs {
		c.Inputs[i].applyDefaults()
	}
	for i := range c.Outputs {
		c.Outputs[i].applyDefaults()
	}
}

func (s *SignatureConfig) applyDefaults() {
	if s.ReceiveFormat == "" {
		s.ReceiveFormat = domain.ReceiveFile
	}
	if s.HTTPLocation == "" {
		s.HTTPLocation = domain.LocationBody
	}
}

// Validate reports every missing or invalid field in one error.
func (c ModelConfig) Validate() error {
	var fields []string
	missing := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			fields = append(fields, field)
		}
	}

	missing(c.Name, "name")
	missing(c.ShortDescription, "short_description")
	missing(c.LongDescription, "long_description")
	if c.HostingLocation == domain.HostingExternal {
		missing(c.URL, "url")
	}

	fields = append(fields, validateSignatures("inputs", c.Inputs)...)
	fields = append(fields, validateSignatures("outputs", c.Outputs)...)

	seen := make(map[string]struct{}, len(c.Assets))
	for i, asset := range c.Assets {
		prefix := fmt.Sprintf("assets[%d]", i)
		missing(asset.AssetName, prefix+".asset_name")
		if _, ok := seen[asset.AssetName]; ok && asset.AssetName != "" {
			fields = append(fields, prefix+".asset_name (duplicate)")
		}
		seen[asset.AssetName] = struct{}{}
		if _, err := domain.ParseTransport(string(asset.Source)); err != nil {
			fields = append(fields, prefix+".source")
		}
		if asset.Data == nil {
			fields = append(fields, prefix+".data")
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields, Reason: fmt.Sprintf("model %q", c.Name)}
	}

	return nil
}

func validateSignatures(group string, signatures []SignatureConfig) []string {
	var fields []string
	for i, signature := range signatures {
		prefix := fmt.Sprintf("%s[%d]", group, i)
		if strings.TrimSpace(signature.DisplayTitle) == "" {
			fields = append(fields, prefix+".display_title")
		}
		if strings.TrimSpace(signature.DataDomain) == "" {
			fields = append(fields, prefix+".data_domain")
		}
		if strings.TrimSpace(signature.DataEncoding) == "" {
			fields = append(fields, prefix+".data_encoding")
		}
		if len(signature.Parameters) == 0 {
			fields = append(fields, prefix+".parameters")
		}
		for j, param := range signature.Parameters {
			paramPrefix := fmt.Sprintf("%s.parameters[%d]", prefix, j)
			if strings.TrimSpace(param.ParameterName) == "" {
				fields = append(fields, paramPrefix+".parameter_name")
			}
			if strings.TrimSpace(param.DataDomain) == "" {
				fields = append(fields, paramPrefix+".data_domain")
			}
			if strings.TrimSpace(param.DataEncoding) == "" {
				fields = append(fields, paramPrefix+".data_encoding")
			}
		}
	}
	return fields
}

func (c ModelConfig) ModelType() domain.ModelType {
	if c.HostingLocation == domain.HostingInternal {
		return domain.ModelTypePytorchJIT
	}
	return domain.ModelTypeAPI
}

func (c ModelConfig) ToModel(accountID domain.AccountID) domain.Model {
	c.applyDefaults()

	model := domain.Model{
		AccountID:        accountID,
		Name:             c.Name,
		VersionLabel:     c.VersionLabel,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		URL:              c.URL,
		RequestType:      c.RequestType,
		ModelType:        c.ModelType(),
		HostingLocation:  c.HostingLocation,
		OutputFormat:     c.OutputFormat,
		HTTPHeaders:      c.HTTPHeaders,
		Inputs:           toSignatures(c.Inputs, domain.SignatureInput),
		Outputs:          toSignatures(c.Outputs, domain.SignatureOutput),
		Assets:           make([]domain.ModelAsset, 0, len(c.Assets)),
	}
	for _, asset := range c.Assets {
		model.Assets = append(model.Assets, domain.ModelAsset{AccountID: accountID, AssetName: asset.AssetName})
	}

	return model
}

func toSignatures(configs []SignatureConfig, kind domain.SignatureType) []domain.ModelSignature {
	signatures := make([]domain.ModelSignature, 0, len(configs))
	for _, cfg := range configs {
		params := make([]domain.ModelParam, 0, len(cfg.Parameters))
		for _, p := range cfg.Parameters {
			params = append(params, domain.ModelParam(p))
		}
		signatures = append(signatures, domain.ModelSignature{
			DisplayTitle:  cfg.DisplayTitle,
			SignatureType: kind,
			DataDomain:    cfg.DataDomain,
			DataEncoding:  cfg.DataEncoding,
			ReceiveFormat: cfg.ReceiveFormat,
			HTTPLocation:  cfg.HTTPLocation,
			Hidden:        cfg.Hidden,
			DefaultValue:  cfg.DefaultValue,
			Parameters:    params,
		})
	}
	return signatures
}

// TransferItems converts the asset section into transfer items.
func (c ModelConfig) TransferItems() ([]domain.TransferItem, error) {
	return transferItems(len(c.Assets), func(i int) (string, domain.Transport, any) {
		return c.Assets[i].AssetName, c.Assets[i].Source, c.Assets[i].Data
	})
}

func (c InvocationConfig) Validate() error {
	var fields []string
	if strings.TrimSpace(c.ModelName) == "" {
		fields = append(fields, "model_name")
	}
	seen := make(map[string]struct{}, len(c.Inputs))
	for i, input := range c.Inputs {
		prefix := fmt.Sprintf("inputs[%d]", i)
		if strings.TrimSpace(input.DisplayTitle) == "" {
			fields = append(fields, prefix+".display_title")
		} else if _, ok := seen[input.DisplayTitle]; ok {
			fields = append(fields, prefix+".display_title (duplicate)")
		}
		seen[input.DisplayTitle] = struct{}{}
		if _, err := domain.ParseTransport(string(input.Source)); err != nil {
			fields = append(fields, prefix+".source")
		}
		if input.Data == nil {
			fields = append(fields, prefix+".data")
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields, Reason: fmt.Sprintf("invocation of %q", c.ModelName)}
	}

	return nil
}

func (c InvocationConfig) TransferItems() ([]domain.TransferItem, error) {
	return transferItems(len(c.Inputs), func(i int) (string, domain.Transport, any) {
		return c.Inputs[i].DisplayTitle, c.Inputs[i].Source, c.Inputs[i].Data
	})
}

func transferItems(n int, at func(i int) (string, domain.Transport, any)) ([]domain.TransferItem, error) {
	items := make([]domain.TransferItem, 0, n)
	for i := 0; i < n; i++ {
		name, source, data := at(i)
		transport, err := domain.ParseTransport(string(source))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		items = append(items, domain.TransferItem{Name: name, Transport: transport, Payload: data})
	}
	return items, nil
}

type ModelConfigBuilder struct {
	config ModelConfig
}

func NewModelConfigBuilder(name, shortDescription, longDescription string) *ModelConfigBuilder {
	return &ModelConfigBuilder{config: ModelConfig{
		Name:             name,
		ShortDescription: shortDescription,
		LongDescription:  longDescription,
	}}
}

func (b *ModelConfigBuilder) WithVersionLabel(label string) *ModelConfigBuilder {
	b.config.VersionLabel = label
	return b
}

func (b *ModelConfigBuilder) WithHosting(location domain.HostingLocation) *ModelConfigBuilder {
	b.config.HostingLocation = location
	return b
}

func (b *ModelConfigBuilder) WithOutputFormat(format domain.OutputFormat) *ModelConfigBuilder {
	b.config.OutputFormat = format
	return b
}

func (b *ModelConfigBuilder) WithRequestType(requestType domain.HTTPRequestType) *ModelConfigBuilder {
	b.config.RequestType = requestType
	return b
}

func (b *ModelConfigBuilder) WithHTTPHeaders(headers map[string]string) *ModelConfigBuilder {
	b.config.HTTPHeaders = headers
	return b
}

func (b *ModelConfigBuilder) WithURL(url string) *ModelConfigBuilder {
	b.config.URL = url
	return b
}

func (b *ModelConfigBuilder) AddInput(signature SignatureConfig) *ModelConfigBuilder {
	b.config.Inputs = append(b.config.Inputs, signature)
	return b
}

func (b *ModelConfigBuilder) AddOutput(signature SignatureConfig) *ModelConfigBuilder {
	b.config.Outputs = append(b.config.Outputs, signature)
	return b
}

func (b *ModelConfigBuilder) AddAsset(name string, source domain.Transport, data any) *ModelConfigBuilder {
	b.config.Assets = append(b.config.Assets, AssetConfig{AssetName: name, Source: source, Data: data})
	return b
}

func (b *ModelConfigBuilder) Build() (ModelConfig, error) {
	config := b.config
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return ModelConfig{}, err
	}
	return config, nil
}

type SignatureBuilder struct {
	signature SignatureConfig
}

func NewSignatureBuilder(displayTitle, dataDomain, dataEncoding string) *SignatureBuilder {
	return &SignatureBuilder{signature: SignatureConfig{
		DisplayTitle: displayTitle,
		DataDomain:   dataDomain,
		DataEncoding: dataEncoding,
	}}
}

func (b *SignatureBuilder) AddParameter(name, dataDomain, dataEncoding string) *SignatureBuilder {
	b.signature.Parameters = append(b.signature.Parameters, ParamConfig{
		ParameterName: name,
		DataDomain:    dataDomain,
		DataEncoding:  dataEncoding,
	})
	return b
}

func (b *SignatureBuilder) WithReceiveFormat(format domain.ReceiveFormat) *SignatureBuilder {
	b.signature.ReceiveFormat = format
	return b
}

func (b *SignatureBuilder) WithHTTPLocation(location domain.HTTPLocation) *SignatureBuilder {
	b.signature.HTTPLocation = location
	return b
}

func (b *SignatureBuilder) WithDefaultValue(value string) *SignatureBuilder {
	b.signature.DefaultValue = &value
	return b
}

func (b *SignatureBuilder) Hidden() *SignatureBuilder {
	b.signature.Hidden = true
	return b
}

func (b *SignatureBuilder) Build() (SignatureConfig, error) {
	signature := b.signature
	signature.applyDefaults()
	if fields := validateSignatures("signature", []SignatureConfig{signature}); len(fields) > 0 {
		return SignatureConfig{}, &domain.ValidationError{Fields: fields, Reason: fmt.Sprintf("signature %q", signature.DisplayTitle)}
	}
	return signature, nil
}

type InvocationBuilder struct {
	config InvocationConfig
}

func NewInvocationBuilder(modelName string) *InvocationBuilder {
	return &InvocationBuilder{config: InvocationConfig{ModelName: modelName}}
}

func (b *InvocationBuilder) AddInput(displayTitle string, source domain.Transport, data any) *InvocationBuilder {
	b.config.Inputs = append(b.config.Inputs, InputConfig{DisplayTitle: displayTitle, Source: source, Data: data})
	return b
}

func (b *InvocationBuilder) Build() (InvocationConfig, error) {
	if err := b.config.Validate(); err != nil {
		return InvocationConfig{}, err
	}
	return b.config, nil
}

func LoadModelConfig(path string) (ModelConfig, error) {
	var config ModelConfig
	if err := decodeYAMLFile(path, &config); err != nil {
		return ModelConfig{}, err
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return ModelConfig{}, err
	}
	return config, nil
}

func LoadInvocationConfig(path string) (InvocationConfig, error) {
	var config InvocationConfig
	if err := decodeYAMLFile(path, &config); err != nil {
		return InvocationConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return InvocationConfig{}, err
	}
	return config, nil
}

func decodeYAMLFile(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}
