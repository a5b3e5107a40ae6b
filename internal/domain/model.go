package domain

type HostingLocation string

const (
	HostingInternal HostingLocation = "Internal"
	HostingExternal HostingLocation = "External"
)

type ModelType string

const (
	ModelTypePytorchJIT ModelType = "Pytorch_jit"
	ModelTypeAPI        ModelType = "Api"
)

type OutputFormat string

const (
	OutputJSON   OutputFormat = "Json"
	OutputBinary OutputFormat = "Binary"
	OutputText   OutputFormat = "Text"
)

type HTTPRequestType string

const (
	RequestGet  HTTPRequestType = "Get"
	RequestPost HTTPRequestType = "Post"
	RequestPut  HTTPRequestType = "Put"
)

type ReceiveFormat string

const (
	ReceiveFile      ReceiveFormat = "File"
	ReceiveLink      ReceiveFormat = "Link"
	ReceivePrimitive ReceiveFormat = "Primitive"
)

type HTTPLocation string

const (
	LocationBody  HTTPLocation = "Body"
	LocationPath  HTTPLocation = "Path"
	LocationQuery HTTPLocation = "Query"
)

type SignatureType string

const (
	SignatureInput  SignatureType = "Input"
	SignatureOutput SignatureType = "Output"
)

type Model struct {
	ID               string            `json:"id,omitempty"`
	AccountID        AccountID         `json:"account_id"`
	Name             string            `json:"name"`
	VersionLabel     string            `json:"version_label"`
	ShortDescription string            `json:"short_description"`
	LongDescription  string            `json:"long_description"`
	URL              string            `json:"url"`
	RequestType      HTTPRequestType   `json:"request_type"`
	ModelType        ModelType         `json:"model_type"`
	HostingLocation  HostingLocation   `json:"hosting_location"`
	OutputFormat     OutputFormat      `json:"output_format"`
	HTTPHeaders      map[string]string `json:"http_headers"`
	Inputs           []ModelSignature  `json:"inputs"`
	Outputs          []ModelSignature  `json:"outputs"`
	Assets           []ModelAsset      `json:"assets"`
}

type ModelSignature struct {
	ID            string        `json:"id,omitempty"`
	ModelID       string        `json:"model_id,omitempty"`
	DisplayTitle  string        `json:"display_title"`
	SignatureType SignatureType `json:"signature_type"`
	DataDomain    string        `json:"data_domain"`
	DataEncoding  string        `json:"data_encoding"`
	ReceiveFormat ReceiveFormat `json:"receive_format"`
	HTTPLocation  HTTPLocation  `json:"http_location"`
	Hidden        bool          `json:"hidden"`
	DefaultValue  *string       `json:"default_value"`
	Parameters    []ModelParam  `json:"parameters"`
}

type ModelParam struct {
	ParameterName string `json:"parameter_name"`
	DataDomain    string `json:"data_domain"`
	DataEncoding  string `json:"data_encoding"`
}

type ModelAsset struct {
	ID        string    `json:"id,omitempty"`
	AccountID AccountID `json:"account_id"`
	ModelID   string    `json:"model_id,omitempty"`
	AssetName string    `json:"asset_name"`
}

func (m Model) AssetIDs() []string {
	ids := make([]string, 0, len(m.Assets))
	for _, asset := range m.Assets {
		ids = append(ids, asset.ID)
	}
	return ids
}
