package config

// Orderer configuration patches.
// Nil pointers and empty values are omitted, leaving corresponding template leaves untouched.

type (
	General struct {
		ListenAddress   string          `json:"ListenAddress,omitempty"`
		ListenPort      *int            `json:"ListenPort,omitempty"`
		TLS             *TLS            `json:"TLS,omitempty"`
		Keepalive       *Keepalive      `json:"Keepalive,omitempty"`
		Cluster         *Cluster        `json:"Cluster,omitempty"`
		BootstrapMethod string          `json:"BootstrapMethod,omitempty"`
		BootstrapFile   string          `json:"BootstrapFile,omitempty"`
		LocalMSPDir     string          `json:"LocalMSPDir,omitempty"`
		LocalMSPID      string          `json:"LocalMSPID,omitempty"`
		Profile         *Profile        `json:"Profile,omitempty"`
		BCCSP           *BCCSP          `json:"BCCSP,omitempty"`
		Authentication  *Authentication `json:"Authentication,omitempty"`
	}

	TLS struct {
		Enabled            *bool    `json:"Enabled,omitempty"`
		PrivateKey         string   `json:"PrivateKey,omitempty"`
		Certificate        string   `json:"Certificate,omitempty"`
		RootCAs            []string `json:"RootCAs,omitempty"`
		ClientAuthRequired *bool    `json:"ClientAuthRequired,omitempty"`
		ClientRootCAs      []string `json:"ClientRootCAs,omitempty"`
	}

	Keepalive struct {
		ServerMinInterval string `json:"ServerMinInterval,omitempty"`
		ServerInterval    string `json:"ServerInterval,omitempty"`
		ServerTimeout     string `json:"ServerTimeout,omitempty"`
	}

	Cluster struct {
		SendBufferSize    *int   `json:"SendBufferSize,omitempty"`
		ClientCertificate string `json:"ClientCertificate,omitempty"`
		ClientPrivateKey  string `json:"ClientPrivateKey,omitempty"`
		ListenPort        *int   `json:"ListenPort,omitempty"`
		ListenAddress     string `json:"ListenAddress,omitempty"`
		ServerCertificate string `json:"ServerCertificate,omitempty"`
		ServerPrivateKey  string `json:"ServerPrivateKey,omitempty"`
	}

	Profile struct {
		Enabled *bool  `json:"Enabled,omitempty"`
		Address string `json:"Address,omitempty"`
	}

	BCCSP struct {
		Default string `json:"Default,omitempty"`
		SW      *SW    `json:"SW,omitempty"`
	}

	SW struct {
		Hash         string        `json:"Hash,omitempty"`
		Security     *int          `json:"Security,omitempty"`
		FileKeyStore *FileKeyStore `json:"FileKeyStore,omitempty"`
	}

	FileKeyStore struct {
		KeyStore string `json:"KeyStore,omitempty"`
	}

	Authentication struct {
		TimeWindow         string `json:"TimeWindow,omitempty"`
		NoExpirationChecks *bool  `json:"NoExpirationChecks,omitempty"`
	}

	FileLedger struct {
		Location string `json:"Location,omitempty"`
		Prefix   string `json:"Prefix,omitempty"`
	}

	Kafka struct {
		Retry     *Retry     `json:"Retry,omitempty"`
		Verbose   *bool      `json:"Verbose,omitempty"`
		TLS       *TLS       `json:"TLS,omitempty"`
		SASLPlain *SASLPlain `json:"SASLPlain,omitempty"`
		Topic     *Topic     `json:"Topic,omitempty"`
		Version   string     `json:"Version,omitempty"`
	}

	Retry struct {
		ShortInterval   string           `json:"ShortInterval,omitempty"`
		ShortTotal      string           `json:"ShortTotal,omitempty"`
		LongInterval    string           `json:"LongInterval,omitempty"`
		LongTotal       string           `json:"LongTotal,omitempty"`
		NetworkTimeouts *NetworkTimeouts `json:"NetworkTimeouts,omitempty"`
		Metadata        *Backoff         `json:"Metadata,omitempty"`
		Producer        *Backoff         `json:"Producer,omitempty"`
		Consumer        *Backoff         `json:"Consumer,omitempty"`
	}

	NetworkTimeouts struct {
		DialTimeout  string `json:"DialTimeout,omitempty"`
		ReadTimeout  string `json:"ReadTimeout,omitempty"`
		WriteTimeout string `json:"WriteTimeout,omitempty"`
	}

	Backoff struct {
		RetryBackoff string `json:"RetryBackoff,omitempty"`
		RetryMax     *int   `json:"RetryMax,omitempty"`
	}

	SASLPlain struct {
		Enabled  *bool  `json:"Enabled,omitempty"`
		User     string `json:"User,omitempty"`
		Password string `json:"Password,omitempty"`
	}

	Topic struct {
		ReplicationFactor *int `json:"ReplicationFactor,omitempty"`
	}

	Debug struct {
		BroadcastTraceDir string `json:"BroadcastTraceDir,omitempty"`
		DeliverTraceDir   string `json:"DeliverTraceDir,omitempty"`
	}

	Operations struct {
		ListenAddress string `json:"ListenAddress,omitempty"`
		TLS           *TLS   `json:"TLS,omitempty"`
	}

	Metrics struct {
		Provider string  `json:"Provider,omitempty"`
		Statsd   *Statsd `json:"Statsd,omitempty"`
	}

	Statsd struct {
		Network       string `json:"Network,omitempty"`
		Address       string `json:"Address,omitempty"`
		WriteInterval string `json:"WriteInterval,omitempty"`
		Prefix        string `json:"Prefix,omitempty"`
	}

	Admin struct {
		ListenAddress string `json:"ListenAddress,omitempty"`
		TLS           *TLS   `json:"TLS,omitempty"`
	}

	ChannelParticipation struct {
		Enabled            *bool  `json:"Enabled,omitempty"`
		MaxRequestBodySize string `json:"MaxRequestBodySize,omitempty"`
	}

	Consensus struct {
		WALDir            string `json:"WALDir,omitempty"`
		SnapDir           string `json:"SnapDir,omitempty"`
		EvictionSuspicion string `json:"EvictionSuspicion,omitempty"`
	}
)

// Bool returns pointer to `v`, for use in patch literals.
func Bool(v bool) *bool {
	return &v
}

// Int returns pointer to `v`, for use in patch literals.
func Int(v int) *int {
	return &v
}
