package config

import (
	_ "embed"
)

// OrdererFilename is the name orderer expects its configuration file to have.
const OrdererFilename = "orderer.yaml"

//go:embed templates/orderer.yaml
var ordererTemplate []byte

// OrdererConfig builds orderer.yaml on top of the bundled default configuration.
// It is a value type: every setter returns an updated copy.
type OrdererConfig struct {
	document
}

// NewOrdererConfig constructs OrdererConfig from the bundled template.
func NewOrdererConfig() (OrdererConfig, error) {
	doc, err := load(OrdererFilename, ordererTemplate)

	return OrdererConfig{document: doc}, err
}

// LoadOrdererConfig constructs OrdererConfig using orderer.yaml at `path` as the base.
func LoadOrdererConfig(path string) (OrdererConfig, error) {
	doc, err := loadFile(OrdererFilename, path)

	return OrdererConfig{document: doc}, err
}

// OrdererTemplate returns parsed bundled default orderer configuration.
func OrdererTemplate() Tree {
	tree, _ := ParseTree(ordererTemplate)
	return tree
}

func (c OrdererConfig) SetGeneral(patch *General) OrdererConfig {
	c.document = c.merge("General", patch)
	return c
}

func (c OrdererConfig) SetFileLedger(patch *FileLedger) OrdererConfig {
	c.document = c.merge("FileLedger", patch)
	return c
}

func (c OrdererConfig) SetKafka(patch *Kafka) OrdererConfig {
	c.document = c.merge("Kafka", patch)
	return c
}

func (c OrdererConfig) SetDebug(patch *Debug) OrdererConfig {
	c.document = c.merge("Debug", patch)
	return c
}

func (c OrdererConfig) SetOperations(patch *Operations) OrdererConfig {
	c.document = c.merge("Operations", patch)
	return c
}

func (c OrdererConfig) SetMetrics(patch *Metrics) OrdererConfig {
	c.document = c.merge("Metrics", patch)
	return c
}

func (c OrdererConfig) SetAdmin(patch *Admin) OrdererConfig {
	c.document = c.merge("Admin", patch)
	return c
}

func (c OrdererConfig) SetChannelParticipation(patch *ChannelParticipation) OrdererConfig {
	c.document = c.merge("ChannelParticipation", patch)
	return c
}

func (c OrdererConfig) SetConsensus(patch *Consensus) OrdererConfig {
	c.document = c.merge("Consensus", patch)
	return c
}

func (c OrdererConfig) SetListenAddress(address string) OrdererConfig {
	return c.SetGeneral(&General{ListenAddress: address})
}

func (c OrdererConfig) SetListenPort(port int) OrdererConfig {
	if port == 0 {
		return c
	}

	return c.SetGeneral(&General{ListenPort: &port})
}

func (c OrdererConfig) SetLocalMSPID(id string) OrdererConfig {
	return c.SetGeneral(&General{LocalMSPID: id})
}

func (c OrdererConfig) SetLocalMSPDir(dir string) OrdererConfig {
	return c.SetGeneral(&General{LocalMSPDir: dir})
}

// SetTLS patches General.TLS group.
func (c OrdererConfig) SetTLS(patch *TLS) OrdererConfig {
	if patch == nil {
		return c
	}

	return c.SetGeneral(&General{TLS: patch})
}

// SetBootstrapFile points orderer to genesis block file.
func (c OrdererConfig) SetBootstrapFile(path string) OrdererConfig {
	if len(path) == 0 {
		return c
	}

	return c.SetGeneral(&General{BootstrapMethod: "file", BootstrapFile: path})
}

// Set writes `value` at dot separated `path`, e.g. "General.Cluster.ListenPort".
func (c OrdererConfig) Set(path string, value interface{}) OrdererConfig {
	c.document = c.set(path, value)
	return c
}

// Tree returns copy of the merged configuration.
func (c OrdererConfig) Tree() Tree {
	return c.tree.Clone()
}

// Err returns error occurred while applying patches.
func (c OrdererConfig) Err() error {
	return c.err
}

// Save writes configuration to `path`, appending orderer.yaml unless it ends with `.yaml`.
// Returns path of the written file.
func (c OrdererConfig) Save(path string) (string, error) {
	return c.save(path)
}
