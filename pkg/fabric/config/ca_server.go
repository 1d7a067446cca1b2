package config

import (
	_ "embed"
)

// CAServerFilename is the name fabric-ca-server expects its configuration file to have.
const CAServerFilename = "fabric-ca-server-config.yaml"

//go:embed templates/fabric-ca-server-config.yaml
var caServerTemplate []byte

// fabric-ca-server configuration patches.
type (
	CATLS struct {
		Enabled    *bool       `json:"enabled,omitempty"`
		CertFile   string      `json:"certfile,omitempty"`
		KeyFile    string      `json:"keyfile,omitempty"`
		ClientAuth *ClientAuth `json:"clientauth,omitempty"`
	}

	ClientAuth struct {
		Type      string   `json:"type,omitempty"`
		CertFiles []string `json:"certfiles,omitempty"`
	}

	CA struct {
		Name      string `json:"name,omitempty"`
		KeyFile   string `json:"keyfile,omitempty"`
		CertFile  string `json:"certfile,omitempty"`
		ChainFile string `json:"chainfile,omitempty"`
	}

	CSR struct {
		CN         string      `json:"cn,omitempty"`
		KeyRequest *KeyRequest `json:"keyrequest,omitempty"`
		Names      []CSRName   `json:"names,omitempty"`
		Hosts      []string    `json:"hosts,omitempty"`
		CA         *CSRCA      `json:"ca,omitempty"`
	}

	KeyRequest struct {
		Algo string `json:"algo,omitempty"`
		Size *int   `json:"size,omitempty"`
	}

	CSRName struct {
		C  string `json:"C,omitempty"`
		ST string `json:"ST,omitempty"`
		L  string `json:"L,omitempty"`
		O  string `json:"O,omitempty"`
		OU string `json:"OU,omitempty"`
	}

	CSRCA struct {
		Expiry     string `json:"expiry,omitempty"`
		PathLength *int   `json:"pathlength,omitempty"`
	}

	DB struct {
		Type       string `json:"type,omitempty"`
		DataSource string `json:"datasource,omitempty"`
		TLS        *DBTLS `json:"tls,omitempty"`
	}

	DBTLS struct {
		Enabled   *bool    `json:"enabled,omitempty"`
		CertFiles []string `json:"certfiles,omitempty"`
		Client    *Client  `json:"client,omitempty"`
	}

	Client struct {
		CertFile string `json:"certfile,omitempty"`
		KeyFile  string `json:"keyfile,omitempty"`
	}

	Registry struct {
		MaxEnrollments *int       `json:"maxenrollments,omitempty"`
		Identities     []Identity `json:"identities,omitempty"`
	}

	Identity struct {
		Name        string                 `json:"name"`
		Pass        string                 `json:"pass"`
		Type        string                 `json:"type"`
		Affiliation string                 `json:"affiliation"`
		Attrs       map[string]interface{} `json:"attrs,omitempty"`
	}

	CAOperations struct {
		ListenAddress string           `json:"listenAddress,omitempty"`
		TLS           *CAOperationsTLS `json:"tls,omitempty"`
	}

	CAOperationsTLS struct {
		Enabled            *bool     `json:"enabled,omitempty"`
		Cert               *FileRef  `json:"cert,omitempty"`
		Key                *FileRef  `json:"key,omitempty"`
		ClientAuthRequired *bool     `json:"clientAuthRequired,omitempty"`
		ClientRootCAs      *FilesRef `json:"clientRootCAs,omitempty"`
	}

	FileRef struct {
		File string `json:"file,omitempty"`
	}

	FilesRef struct {
		Files []string `json:"files,omitempty"`
	}

	CAMetrics struct {
		Provider string  `json:"provider,omitempty"`
		Statsd   *Statsd `json:"statsd,omitempty"`
	}
)

// CAServerConfig builds fabric-ca-server-config.yaml on top of the bundled default configuration.
// It is a value type: every setter returns an updated copy.
type CAServerConfig struct {
	document
}

// NewCAServerConfig constructs CAServerConfig from the bundled template.
func NewCAServerConfig() (CAServerConfig, error) {
	doc, err := load(CAServerFilename, caServerTemplate)

	return CAServerConfig{document: doc}, err
}

// LoadCAServerConfig constructs CAServerConfig using configuration file at `path` as the base.
func LoadCAServerConfig(path string) (CAServerConfig, error) {
	doc, err := loadFile(CAServerFilename, path)

	return CAServerConfig{document: doc}, err
}

func (c CAServerConfig) SetPort(port int) CAServerConfig {
	if port == 0 {
		return c
	}

	c.document = c.set("port", port)
	return c
}

func (c CAServerConfig) SetDebug(debug bool) CAServerConfig {
	if !debug {
		return c
	}

	c.document = c.set("debug", true)
	return c
}

func (c CAServerConfig) SetTLS(patch *CATLS) CAServerConfig {
	c.document = c.merge("tls", patch)
	return c
}

func (c CAServerConfig) SetCA(patch *CA) CAServerConfig {
	c.document = c.merge("ca", patch)
	return c
}

func (c CAServerConfig) SetCSR(patch *CSR) CAServerConfig {
	c.document = c.merge("csr", patch)
	return c
}

func (c CAServerConfig) SetDB(patch *DB) CAServerConfig {
	c.document = c.merge("db", patch)
	return c
}

// SetRegistry patches registry group. Identities list replaces the default one as a whole.
func (c CAServerConfig) SetRegistry(patch *Registry) CAServerConfig {
	c.document = c.merge("registry", patch)
	return c
}

func (c CAServerConfig) SetOperations(patch *CAOperations) CAServerConfig {
	c.document = c.merge("operations", patch)
	return c
}

func (c CAServerConfig) SetMetrics(patch *CAMetrics) CAServerConfig {
	c.document = c.merge("metrics", patch)
	return c
}

// Set writes `value` at dot separated `path`, e.g. "cfg.identities.allowremove".
func (c CAServerConfig) Set(path string, value interface{}) CAServerConfig {
	c.document = c.set(path, value)
	return c
}

// Tree returns copy of the merged configuration.
func (c CAServerConfig) Tree() Tree {
	return c.tree.Clone()
}

// Err returns error occurred while applying patches.
func (c CAServerConfig) Err() error {
	return c.err
}

// Save writes configuration to `path`, appending fabric-ca-server-config.yaml unless it ends with `.yaml`.
// Returns path of the written file.
func (c CAServerConfig) Save(path string) (string, error) {
	return c.save(path)
}
